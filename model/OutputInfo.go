package model

import (
	"filippo.io/edwards25519"
	"github.com/bsv-blockchain/ringselect/errors"
)

// OutputInfo is what a node reports for one global output index.
type OutputInfo struct {
	// Height is the block the output was created in.
	Height uint64 `json:"height"`
	// Unlocked is the node's own claim about spendability. Only the trusted filter reads it.
	Unlocked bool `json:"unlocked"`
	// Key is the output's one-time public key.
	Key CompressedPoint `json:"key"`
	// Commitment is the amount commitment (the "mask" in node responses).
	Commitment CompressedPoint `json:"mask"`
	// TxID is the transaction that created the output.
	TxID Hash `json:"txid"`
}

// TxTimelock is the part of an owning transaction the deterministic filter needs.
type TxTimelock struct {
	Hash       Hash   `json:"hash"`
	UnlockTime uint64 `json:"unlock_time"`
}

// SpendableOutput is the output being spent, as known locally by the wallet.
// It is never sourced from node data.
type SpendableOutput struct {
	Index      uint64
	Key        *edwards25519.Point
	Commitment *edwards25519.Point
}

// Validate checks the spend is present and carries both points.
func (s *SpendableOutput) Validate() error {
	if s == nil {
		return errors.NewInvalidArgumentError("real spend is required")
	}

	if s.Key == nil || s.Commitment == nil {
		return errors.NewInvalidArgumentError("real spend %d is missing its key or commitment", s.Index)
	}

	return nil
}

// Matches reports whether a node record carries exactly this output's key and commitment.
func (s *SpendableOutput) Matches(info *OutputInfo) bool {
	return NewCompressedPoint(s.Key) == info.Key && NewCompressedPoint(s.Commitment) == info.Commitment
}

// Member returns the spend as a ring member.
func (s *SpendableOutput) Member() RingMember {
	return RingMember{
		Index:      s.Index,
		Key:        s.Key,
		Commitment: s.Commitment,
	}
}

// RingMember is a verified (key, commitment) pair tagged with its global output index.
type RingMember struct {
	Index      uint64
	Key        *edwards25519.Point
	Commitment *edwards25519.Point
}

// Pair returns the member as the [key, commitment] pair used for signing.
func (m RingMember) Pair() [2]*edwards25519.Point {
	return [2]*edwards25519.Point{m.Key, m.Commitment}
}
