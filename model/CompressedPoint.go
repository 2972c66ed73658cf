package model

import (
	"encoding/hex"

	"filippo.io/edwards25519"
	"github.com/bsv-blockchain/ringselect/errors"
)

// groupOrderMinusOne is l-1 in little endian, where l is the order of the prime order
// subgroup. l itself reduces to zero as a scalar, so torsion is detected as [l-1]P + P.
var groupOrderMinusOne = [32]byte{
	0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

var scalarOrderMinusOne = func() *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(groupOrderMinusOne[:])
	if err != nil {
		panic(err)
	}

	return s
}()

// CompressedPoint is the 32 byte encoding of an ed25519 point as returned by a node.
type CompressedPoint [32]byte

// NewCompressedPoint compresses p.
func NewCompressedPoint(p *edwards25519.Point) CompressedPoint {
	var c CompressedPoint

	copy(c[:], p.Bytes())

	return c
}

// Decompress returns the decoded point, or false if the bytes are not a point on the curve.
func (c CompressedPoint) Decompress() (*edwards25519.Point, bool) {
	p, err := new(edwards25519.Point).SetBytes(c[:])
	if err != nil {
		return nil, false
	}

	return p, true
}

func (c CompressedPoint) String() string {
	return hex.EncodeToString(c[:])
}

func (c CompressedPoint) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CompressedPoint) UnmarshalText(text []byte) error {
	if len(text) != 2*len(c) {
		return errors.NewInvalidArgumentError("point must be %d hex characters, got %d", 2*len(c), len(text))
	}

	if _, err := hex.Decode(c[:], text); err != nil {
		return errors.NewInvalidArgumentError("invalid point hex", err)
	}

	return nil
}

// IsTorsionFree reports whether p lies in the prime order subgroup, i.e. carries no
// small order component.
func IsTorsionFree(p *edwards25519.Point) bool {
	q := new(edwards25519.Point).ScalarMult(scalarOrderMinusOne, p)
	q.Add(q, p)

	return q.Equal(edwards25519.NewIdentityPoint()) == 1
}
