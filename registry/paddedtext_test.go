package registry

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddedTextRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"LEO",
		"Sentinel-1",
		"Luxembourg",
		"exactly-thirty-bytes-long-text", // 30 bytes
	}
	for _, text := range texts {
		padded, err := EncodePaddedText(text)
		assert.Nil(t, err)
		assert.Equal(t, text, padded.String())
		assert.Equal(t, text, DecodePaddedText(padded[:]))
	}
}

func TestEncodePaddedTextTooLong(t *testing.T) {
	_, err := EncodePaddedText("this text is way longer than the thirty bytes capacity")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDecodePaddedTextShortSlice(t *testing.T) {
	assert.Equal(t, "", DecodePaddedText(nil))
	assert.Equal(t, "", DecodePaddedText([]byte{}))
	assert.Equal(t, "", DecodePaddedText([]byte{1, 2, 3}))
}

func TestDecodePaddedTextCorruptedLength(t *testing.T) {
	// declared length runs past the slot, decode the remainder instead
	bs := make([]byte, PaddedTextSize)
	binary.LittleEndian.PutUint32(bs[:4], 1000)
	copy(bs[4:], "orphan")
	decoded := DecodePaddedText(bs)
	assert.Equal(t, "orphan", decoded[:6])
	assert.Equal(t, PaddedTextCapacity, len(decoded))
}

func TestDecodePaddedTextInvalidUtf8(t *testing.T) {
	cases := []struct {
		raw  []byte
		want string
	}{
		// each stray byte is its own maximal invalid subsequence
		{[]byte{'o', 'k', 0xff, 0xfe}, "ok��"},
		{[]byte{0x80, 0x80}, "��"},
		// a truncated multi byte sequence collapses to one replacement
		{[]byte{'a', 0xe2, 0x82, 'b'}, "a�b"},
		{[]byte{0xe2, 0x82}, "�"},
		{[]byte{0xf0, 0x9f, 0x9b}, "�"},
		// surrogate range second byte breaks the sequence immediately
		{[]byte{0xed, 0xa0, 0x80}, "���"},
		// valid text around the damage survives untouched
		{[]byte{0xc3, 0xa9, 0xff, 'x'}, "é�x"},
	}
	for _, c := range cases {
		bs := make([]byte, PaddedTextSize)
		binary.LittleEndian.PutUint32(bs[:4], uint32(len(c.raw)))
		copy(bs[4:], c.raw)
		assert.Equal(t, c.want, DecodePaddedText(bs), "raw % x", c.raw)
	}
}
