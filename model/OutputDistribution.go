package model

import (
	"github.com/bsv-blockchain/ringselect/errors"
)

// OutputDistribution holds the cumulative number of outputs created up to and
// including each block height.
type OutputDistribution []uint64

// Validate checks the distribution never decreases.
func (d OutputDistribution) Validate() error {
	for i := 1; i < len(d); i++ {
		if d[i] < d[i-1] {
			return errors.NewDistributionInvalidError("distribution decreases at height %d (%d < %d)", i, d[i], d[i-1])
		}
	}

	return nil
}

// OutputsInBlock returns how many outputs block i created. The block's outputs are the
// global indexes from d[i] minus that count up to d[i], exclusive.
func (d OutputDistribution) OutputsInBlock(i int) (uint64, error) {
	if i < 0 || i >= len(d) {
		return 0, errors.NewDistributionInvalidError("no block at height %d in a distribution of %d", i, len(d))
	}

	if i == 0 {
		return d[0], nil
	}

	if d[i] < d[i-1] {
		return 0, errors.NewDistributionInvalidError("non-monotonic distribution at height %d", i)
	}

	return d[i] - d[i-1], nil
}
