package model

import (
	"encoding/hex"

	"github.com/bsv-blockchain/ringselect/errors"
)

// Hash is a 32 byte transaction hash, displayed in wire byte order.
type Hash [32]byte

// NewHashFromStr parses a 64 character hex string.
func NewHashFromStr(s string) (Hash, error) {
	var h Hash
	if err := h.UnmarshalText([]byte(s)); err != nil {
		return Hash{}, err
	}

	return h, nil
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	if len(text) != 2*len(h) {
		return errors.NewInvalidArgumentError("hash must be %d hex characters, got %d", 2*len(h), len(text))
	}

	if _, err := hex.Decode(h[:], text); err != nil {
		return errors.NewInvalidArgumentError("invalid hash hex", err)
	}

	return nil
}
