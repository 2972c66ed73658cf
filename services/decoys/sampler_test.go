package decoys

import (
	"slices"
	"testing"

	"github.com/bsv-blockchain/ringselect/chaincfg"
	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCandidatesLinearChain(t *testing.T) {
	dist := linearDistribution(100)

	for seed := uint64(0); seed < 25; seed++ {
		candidates, err := SampleCandidates(seeded(seed), 50, dist, 10, WithMaxSampleIterations(100_000))
		require.NoError(t, err, "seed %d", seed)

		require.Len(t, candidates, 11)
		assert.True(t, slices.IsSorted(candidates))
		assert.Contains(t, candidates, uint64(50))

		seen := make(map[uint64]struct{}, len(candidates))
		for _, c := range candidates {
			_, dup := seen[c]
			require.False(t, dup, "duplicate candidate %d", c)

			seen[c] = struct{}{}

			assert.LessOrEqual(t, c, uint64(89))
		}
	}
}

func TestSampleCandidatesBoundRespect(t *testing.T) {
	// 200 blocks of 100 outputs each
	dist := make([]uint64, 200)
	for i := range dist {
		dist[i] = uint64(i) * 100
	}

	bound := dist[len(dist)-int(chaincfg.MainNetParams.DefaultLockWindow)]

	for seed := uint64(0); seed < 10; seed++ {
		candidates, err := SampleCandidates(seeded(seed), 500, dist, 20, WithMaxSampleIterations(100_000))
		require.NoError(t, err)
		require.Len(t, candidates, 21)

		for _, c := range candidates {
			assert.Less(t, c, bound)
		}
	}
}

func TestSampleCandidatesDeterministicForSeed(t *testing.T) {
	dist := linearDistribution(100)

	a, err := SampleCandidates(seeded(7), 50, dist, 10, WithMaxSampleIterations(100_000))
	require.NoError(t, err)

	b, err := SampleCandidates(seeded(7), 50, dist, 10, WithMaxSampleIterations(100_000))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSampleCandidatesErrors(t *testing.T) {
	nonMonotonic := make([]uint64, 100)
	for i := range nonMonotonic {
		nonMonotonic[i] = uint64(i) + 10
	}

	nonMonotonic[99] = 0

	// raise one interior block so the bound lookup would land past the tip
	spiked := linearDistribution(100)
	spiked[90] = 1000

	// unlock miner outputs immediately so only the exclusion pool can run short
	noCoinbaseLock := chaincfg.RegressionNetParams
	noCoinbaseLock.CoinbaseLockWindow = 0

	tests := []struct {
		name     string
		dist     []uint64
		real     uint64
		count    int
		opts     []Option
		expected error
	}{
		{
			name:     "zero candidates",
			dist:     linearDistribution(100),
			real:     50,
			count:    0,
			expected: errors.ErrInvalidArgument,
		},
		{
			name:     "shorter than lock window",
			dist:     linearDistribution(5),
			real:     1,
			count:    1,
			expected: errors.ErrInsufficientChainState,
		},
		{
			name:     "empty distribution",
			dist:     nil,
			real:     0,
			count:    1,
			expected: errors.ErrInsufficientChainState,
		},
		{
			name:     "everything inside the coinbase lock",
			dist:     linearDistribution(70),
			real:     10,
			count:    10,
			expected: errors.ErrInsufficientChainState,
		},
		{
			name:     "pool smaller than what is left to find",
			dist:     linearDistribution(20),
			real:     5,
			count:    10,
			opts:     []Option{WithChainParams(&noCoinbaseLock)},
			expected: errors.ErrInsufficientChainState,
		},
		{
			name:     "iteration cap",
			dist:     linearDistribution(100),
			real:     50,
			count:    10,
			opts:     []Option{WithMaxSampleIterations(1)},
			expected: errors.ErrSamplingExhausted,
		},
		{
			name:     "distribution decreases",
			dist:     nonMonotonic,
			real:     50,
			count:    10,
			expected: errors.ErrDistributionInvalid,
		},
		{
			name:     "interior spike",
			dist:     spiked,
			real:     50,
			count:    10,
			opts:     []Option{WithMaxSampleIterations(100_000)},
			expected: errors.ErrDistributionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := SampleCandidates(seeded(1), tt.real, tt.dist, tt.count, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, candidates)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestSampleCandidatesRejectsSpikedDistribution(t *testing.T) {
	for _, height := range []int{30, 90, 95} {
		dist := linearDistribution(100)
		dist[height] = 1000

		for seed := uint64(0); seed < 50; seed++ {
			var (
				candidates []uint64
				err        error
			)

			require.NotPanics(t, func() {
				candidates, err = SampleCandidates(seeded(seed), 50, dist, 10, WithMaxSampleIterations(100_000))
			}, "height %d seed %d", height, seed)

			require.Error(t, err)
			assert.Nil(t, candidates)
			assert.True(t, errors.Is(err, errors.ErrDistributionInvalid), "height %d seed %d: %v", height, seed, err)
			assert.True(t, errors.IsMaliciousResponseError(err))
		}
	}
}

func TestSampleCandidatesFirstBlockOutputs(t *testing.T) {
	// every output was created in the first block
	dist := make([]uint64, 70)
	for i := range dist {
		dist[i] = 100
	}

	candidates, err := SampleCandidates(seeded(9), 5, dist, 10, WithMaxSampleIterations(100_000))
	require.NoError(t, err)
	require.Len(t, candidates, 11)

	for _, c := range candidates {
		assert.Less(t, c, uint64(100))
	}
}

func TestSampleCandidatesExhaustionIsRetryable(t *testing.T) {
	_, err := SampleCandidates(seeded(3), 50, linearDistribution(100), 10, WithMaxSampleIterations(1))
	require.Error(t, err)

	assert.True(t, errors.IsRetryableError(err))
	assert.False(t, errors.IsMaliciousResponseError(err))
}

func TestOutputsPerSecond(t *testing.T) {
	params := &chaincfg.MainNetParams

	perSecond, err := outputsPerSecond(linearDistribution(100), params)
	require.NoError(t, err)
	assert.InDelta(t, 99.0/(100*120), perSecond, 1e-12)

	// only the most recent year of blocks counts
	blocks := params.BlocksPerYear()
	dist := make([]uint64, blocks+50)
	for i := range dist {
		if uint64(i) < 50 {
			dist[i] = uint64(i) * 1000
		} else {
			dist[i] = 49*1000 + uint64(i)
		}
	}

	perSecond, err = outputsPerSecond(dist, params)
	require.NoError(t, err)
	assert.InDelta(t, float64(dist[len(dist)-1]-dist[len(dist)-int(blocks)-1])/float64(blocks*params.BlockTime), perSecond, 1e-12)
}
