package decoys

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"filippo.io/edwards25519"
	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/model"
	"github.com/bsv-blockchain/ringselect/util"
)

// AssembleRing picks ringLength-1 members uniformly from pool, adds the real spend and
// returns the ring sorted by global index with delta encoded offsets. The spend is built
// from local data, never from pool.
func AssembleRing(src rand.Source, ringLength int, spend *model.SpendableOutput, pool []model.RingMember) (*model.Decoys, error) {
	if ringLength < 1 {
		return nil, errors.NewInvalidArgumentError("ring length must be positive, got %d", ringLength)
	}

	if ringLength > model.MaxRingLength {
		return nil, errors.NewInvalidArgumentError("ring length %d exceeds %d", ringLength, model.MaxRingLength)
	}

	if err := spend.Validate(); err != nil {
		return nil, err
	}

	decoyCount := ringLength - 1
	if len(pool) < decoyCount {
		return nil, errors.NewInsufficientDecoysError("need %d decoys, only %d verified", decoyCount, len(pool))
	}

	for _, m := range pool {
		if m.Index == spend.Index {
			return nil, errors.NewInvalidArgumentError("decoy pool contains the real spend %d", spend.Index)
		}
	}

	shuffled := slices.Clone(pool)
	r := rand.New(src)

	// partial Fisher-Yates: the first decoyCount entries become a uniform subset
	for i := 0; i < decoyCount; i++ {
		j := i + r.IntN(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	ring := make([]model.RingMember, 0, ringLength)
	ring = append(ring, shuffled[:decoyCount]...)
	ring = append(ring, spend.Member())

	slices.SortFunc(ring, func(a, b model.RingMember) int {
		return cmp.Compare(a.Index, b.Index)
	})

	signerIndex := util.PartitionPoint(ring, func(m model.RingMember) bool {
		return m.Index < spend.Index
	})

	if signerIndex >= len(ring) || ring[signerIndex].Index != spend.Index {
		return nil, errors.NewProcessingError("real spend %d missing from assembled ring", spend.Index)
	}

	offsets := make([]uint64, len(ring))
	pairs := make([][2]*edwards25519.Point, len(ring))

	for i, m := range ring {
		if i == 0 {
			offsets[i] = m.Index
		} else {
			offsets[i] = m.Index - ring[i-1].Index
		}

		pairs[i] = m.Pair()
	}

	return model.NewDecoys(offsets, signerIndex, pairs)
}
