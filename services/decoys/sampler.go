package decoys

import (
	"math"
	"math/rand/v2"
	"slices"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/bsv-blockchain/ringselect/chaincfg"
	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/model"
	"github.com/bsv-blockchain/ringselect/util"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// The log of a spent output's age in seconds follows Gamma(shape, rate).
	gammaShape = 19.28
	gammaRate  = 1.61

	// recentWindow is the number of blocks that ages younger than the lock window are
	// spread over.
	recentWindow = 15
)

// SampleCandidates draws candidateCount unique decoy candidates from the output
// distribution and returns them together with realIndex, sorted ascending.
//
// Candidates are picked by drawing a spend age, converting it to an output offset with
// the chain's recent output rate, and choosing uniformly inside the block that offset
// falls in. No candidate is at or above the first output of the newest lock window.
func SampleCandidates(src rand.Source, realIndex uint64, distribution []uint64, candidateCount int, opts ...Option) ([]uint64, error) {
	options := ProcessOptions(opts...)
	params := options.chainParams

	if candidateCount < 1 {
		return nil, errors.NewInvalidArgumentError("candidate count must be positive, got %d", candidateCount)
	}

	needed, err := safeconversion.IntToUint64(candidateCount)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("invalid candidate count", err)
	}

	length, err := safeconversion.IntToUint64(len(distribution))
	if err != nil {
		return nil, errors.NewInvalidArgumentError("invalid distribution length", err)
	}

	if length < params.DefaultLockWindow || length == 0 {
		return nil, errors.NewInsufficientChainStateError("not enough blocks to select decoys, have %d need %d", length, params.DefaultLockWindow)
	}

	dist := model.OutputDistribution(distribution)
	if err = dist.Validate(); err != nil {
		return nil, err
	}

	highestExclusive := distribution[length-params.DefaultLockWindow]

	// assumes one output per miner transaction, all of which may still be locked
	if saturatingSub(highestExclusive, params.CoinbaseLockWindow) < needed {
		return nil, errors.NewInsufficientChainStateError("not enough decoy candidates below output %d for %d candidates", highestExclusive, candidateCount)
	}

	perSecond, err := outputsPerSecond(distribution, params)
	if err != nil {
		return nil, err
	}

	r := rand.New(src)
	ages := distuv.Gamma{Alpha: gammaShape, Beta: gammaRate, Src: src}
	tip := params.TipApplication()
	recentSeconds := recentWindow * params.BlockTime
	bound := float64(highestExclusive)

	doNotSelect := util.NewIndexSet(2*candidateCount + 1)
	doNotSelect.Put(realIndex)

	candidates := make([]uint64, 0, candidateCount+1)
	remaining := needed

	for iterations := 0; remaining > 0; iterations++ {
		if iterations >= options.maxSampleIterations {
			return nil, errors.NewSamplingExhaustedError("found %d of %d candidates in %d draws", len(candidates), candidateCount, iterations)
		}

		excluded, err := safeconversion.IntToUint64(doNotSelect.Length())
		if err != nil {
			return nil, errors.NewProcessingError("invalid exclusion count", err)
		}

		if saturatingSub(highestExclusive, excluded) < remaining {
			return nil, errors.NewInsufficientChainStateError("only %d unselected outputs left below %d, need %d", saturatingSub(highestExclusive, excluded), highestExclusive, remaining)
		}

		age := math.Exp(ages.Rand())
		if age > tip {
			age -= tip
		} else {
			age = float64(r.Uint64N(recentSeconds))
		}

		offset := age * perSecond
		if !(offset < bound) {
			continue
		}

		o := uint64(offset)
		if o >= highestExclusive {
			continue
		}

		target := highestExclusive - 1 - o

		i := util.PartitionPoint(distribution, func(s uint64) bool {
			return s < target
		})

		n, err := dist.OutputsInBlock(i)
		if err != nil {
			return nil, err
		}

		if n == 0 {
			continue
		}

		pick := distribution[i] - n + r.Uint64N(n)

		// a pick is either used or unusable, so it is never drawn twice
		if doNotSelect.Put(pick) {
			candidates = append(candidates, pick)
			remaining--
		}
	}

	candidates = append(candidates, realIndex)
	slices.Sort(candidates)

	return candidates, nil
}

// outputsPerSecond is the output creation rate over the most recent year of blocks.
func outputsPerSecond(distribution []uint64, params *chaincfg.Params) (float64, error) {
	length := uint64(len(distribution))
	blocks := min(length, params.BlocksPerYear())

	initial := distribution[saturatingSub(length, blocks+1)]
	newest := distribution[length-1]

	if newest < initial {
		return 0, errors.NewDistributionInvalidError("distribution decreases from %d to %d", initial, newest)
	}

	return float64(newest-initial) / float64(blocks*params.BlockTime), nil
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}

	return a - b
}
