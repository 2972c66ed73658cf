package decoys

import (
	crand "crypto/rand"
	"math/rand/v2"

	"github.com/bsv-blockchain/ringselect/errors"
)

// NewSecureSource returns a ChaCha8 stream keyed from the operating system CSPRNG.
// Each input gets its own stream so rings for different inputs are never correlated.
func NewSecureSource() (*rand.ChaCha8, error) {
	var seed [32]byte

	if _, err := crand.Read(seed[:]); err != nil {
		return nil, errors.NewProcessingError("failed to seed random source", err)
	}

	return rand.NewChaCha8(seed), nil
}
