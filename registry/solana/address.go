package solana

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/dfuse-io/solana-go"

	"github.com/satreg/satellite-gateway/registry"
)

// program derived address constraints of the ledger
const (
	maxSeeds      = 16
	maxSeedLength = 32
)

// satelliteSeedTag is the constant first seed of every satellite account
// the registry program creates.
var satelliteSeedTag = []byte("satellite")

var pdaMarker = []byte("ProgramDerivedAddress")

var errBumpExhausted = errors.New("unable to find a viable program address bump")

// IsValidAddress check address
func (b *Bridge) IsValidAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return (err == nil)
}

// ParsePublicKey parse base58 text into a public key.
// a parse failure is a client input error.
func ParsePublicKey(address string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: invalid public key '%v': %v", registry.ErrInvalidInput, address, err)
	}
	return key, nil
}

// IsOnCurve return true if the bytes decode to a valid ed25519 point.
// a derived program address must be off curve, so no private key can
// ever sign for it.
func IsOnCurve(bs []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(bs)
	return err == nil
}

// CreateProgramAddress derive the address of seeds for the given program.
// fails when the sha256 candidate lands on the curve.
func CreateProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, error) {
	if len(seeds) > maxSeeds {
		return solana.PublicKey{}, fmt.Errorf("too many seeds (%v)", len(seeds))
	}
	for _, seed := range seeds {
		if len(seed) > maxSeedLength {
			return solana.PublicKey{}, fmt.Errorf("seed length %v exceeds the max %v", len(seed), maxSeedLength)
		}
	}
	hasher := sha256.New()
	for _, seed := range seeds {
		hasher.Write(seed)
	}
	hasher.Write(programID[:])
	hasher.Write(pdaMarker)

	var address solana.PublicKey
	copy(address[:], hasher.Sum(nil))
	if IsOnCurve(address[:]) {
		return solana.PublicKey{}, errors.New("derived address lands on the curve")
	}
	return address, nil
}

// FindProgramAddress search the canonical bump for seeds, starting at
// 255 and decrementing until the derived address is off curve.
// the search is deterministic, identical seeds always give the identical
// address and bump.
func FindProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, byte, error) {
	seedsWithBump := make([][]byte, len(seeds)+1)
	copy(seedsWithBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		seedsWithBump[len(seeds)] = []byte{byte(bump)}
		address, err := CreateProgramAddress(seedsWithBump, programID)
		if err == nil {
			return address, byte(bump), nil
		}
	}
	return solana.PublicKey{}, 0, errBumpExhausted
}

// DeriveSatelliteAddress derive the satellite account address for the
// authorities and norad id, using the same seed layout as the registry
// program: ["satellite", user authority, registry authority, LE64(norad)].
func (b *Bridge) DeriveSatelliteAddress(userAuthority, registryAuthority solana.PublicKey, noradID uint64) (solana.PublicKey, byte, error) {
	var noradBytes [8]byte
	binary.LittleEndian.PutUint64(noradBytes[:], noradID)
	seeds := [][]byte{
		satelliteSeedTag,
		userAuthority[:],
		registryAuthority[:],
		noradBytes[:],
	}
	return FindProgramAddress(seeds, b.ProgramID)
}
