package model

import (
	"filippo.io/edwards25519"
	"github.com/bsv-blockchain/ringselect/errors"
)

// MaxRingLength is the largest ring whose signer index fits a byte.
const MaxRingLength = 255

// Decoys is a finished ring: members sorted by global index, the indexes delta encoded
// as offsets, and the position of the real spend.
type Decoys struct {
	Offsets     []uint64
	SignerIndex int
	Ring        [][2]*edwards25519.Point
}

// NewDecoys checks the ring is structurally sound.
func NewDecoys(offsets []uint64, signerIndex int, ring [][2]*edwards25519.Point) (*Decoys, error) {
	if len(ring) == 0 {
		return nil, errors.NewRingInvalidError("ring is empty")
	}

	if len(ring) > MaxRingLength {
		return nil, errors.NewRingInvalidError("ring has %d members, limit is %d", len(ring), MaxRingLength)
	}

	if len(offsets) != len(ring) {
		return nil, errors.NewRingInvalidError("%d offsets for %d ring members", len(offsets), len(ring))
	}

	if signerIndex < 0 || signerIndex >= len(ring) {
		return nil, errors.NewRingInvalidError("signer index %d outside ring of %d", signerIndex, len(ring))
	}

	for i := 1; i < len(offsets); i++ {
		if offsets[i] == 0 {
			return nil, errors.NewRingInvalidError("duplicate ring member at position %d", i)
		}
	}

	return &Decoys{
		Offsets:     offsets,
		SignerIndex: signerIndex,
		Ring:        ring,
	}, nil
}

// Len returns the number of ring members.
func (d *Decoys) Len() int {
	return len(d.Ring)
}

// Indexes sums the offsets back into absolute global output indexes.
func (d *Decoys) Indexes() []uint64 {
	res := make([]uint64, len(d.Offsets))

	var acc uint64
	for i, o := range d.Offsets {
		acc += o
		res[i] = acc
	}

	return res
}

// SignerIndexAbsolute returns the global output index of the real spend.
func (d *Decoys) SignerIndexAbsolute() uint64 {
	var acc uint64
	for _, o := range d.Offsets[:d.SignerIndex+1] {
		acc += o
	}

	return acc
}

// SignerRingMembers returns the key and commitment of the real spend.
func (d *Decoys) SignerRingMembers() [2]*edwards25519.Point {
	return d.Ring[d.SignerIndex]
}
