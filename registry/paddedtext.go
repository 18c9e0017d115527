package registry

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// padded text layout constants
const (
	// PaddedTextCapacity is the max byte length of the stored text.
	PaddedTextCapacity = 30

	// PaddedTextSize is the wire size of a padded text slot:
	// 4 bytes little endian length prefix + fixed capacity.
	PaddedTextSize = 4 + PaddedTextCapacity
)

// PaddedText is a variable length text stored in a fixed capacity wire
// slot. The registry program serializes bounded strings this way, the
// bytes after the declared length are undefined padding.
type PaddedText [PaddedTextSize]byte

// String decode the padded slot to a clean string
func (t PaddedText) String() string {
	return DecodePaddedText(t[:])
}

// DecodePaddedText decode a length prefixed padded text slice.
// A corrupted slot never fails the whole record:
// a slice shorter than the length prefix decodes to "", and a declared
// length running past the slice falls back to decoding the remainder.
// Invalid UTF-8 sequences are replaced, not rejected.
func DecodePaddedText(bs []byte) string {
	if len(bs) < 4 {
		return ""
	}
	length := int(binary.LittleEndian.Uint32(bs[:4]))
	dataEnd := 4 + length
	if dataEnd > len(bs) || dataEnd < 4 {
		return toValidString(bs[4:])
	}
	return toValidString(bs[4:dataEnd])
}

// EncodePaddedText encode text into a padded slot, zero padded.
// used by tests and dev tools, the gateway itself never writes.
func EncodePaddedText(text string) (t PaddedText, err error) {
	if len(text) > PaddedTextCapacity {
		return t, fmt.Errorf("%w: text length %v exceeds capacity %v", ErrInvalidInput, len(text), PaddedTextCapacity)
	}
	binary.LittleEndian.PutUint32(t[:4], uint32(len(text)))
	copy(t[4:], text)
	return t, nil
}

// toValidString replaces every maximal invalid UTF-8 subsequence with a
// single U+FFFD, per the Unicode substitution of maximal subparts.
// two stray bytes give two replacement runes, a truncated multi byte
// sequence gives one.
func toValidString(bs []byte) string {
	if utf8.Valid(bs) {
		return string(bs)
	}
	var sb strings.Builder
	sb.Grow(len(bs))
	for len(bs) > 0 {
		r, size := utf8.DecodeRune(bs)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
			bs = bs[invalidSubpartLen(bs):]
			continue
		}
		sb.Write(bs[:size])
		bs = bs[size:]
	}
	return sb.String()
}

// invalidSubpartLen returns the length of the maximal invalid subpart
// at the start of bs: the leading byte plus every following byte that is
// a well formed continuation for its position.
func invalidSubpartLen(bs []byte) int {
	lead := bs[0]
	var need int
	var lo, hi byte = 0x80, 0xBF
	switch {
	case lead < 0xC2 || lead > 0xF4:
		return 1
	case lead <= 0xDF:
		need = 1
	case lead <= 0xEF:
		need = 2
		if lead == 0xE0 {
			lo = 0xA0
		} else if lead == 0xED {
			hi = 0x9F
		}
	default:
		need = 3
		if lead == 0xF0 {
			lo = 0x90
		} else if lead == 0xF4 {
			hi = 0x8F
		}
	}
	n := 1
	for i := 1; i <= need && i < len(bs); i++ {
		b := bs[i]
		if i > 1 {
			lo, hi = 0x80, 0xBF
		}
		if b < lo || b > hi {
			break
		}
		n++
	}
	return n
}
