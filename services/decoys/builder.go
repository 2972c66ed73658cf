package decoys

import (
	"math/rand/v2"

	"github.com/bsv-blockchain/ringselect/model"
)

// BuildRing filters the records fetched for candidates and assembles a ring of
// ringLength from the survivors. Passing DeterministicOutputs selects the filter that
// verifies unlock status locally.
func BuildRing(src rand.Source, ringLength int, spend *model.SpendableOutput, candidates []uint64, source OutputSource, opts ...Option) (*model.Decoys, error) {
	decoys, _, err := buildRing(src, ringLength, spend, candidates, source, opts...)

	return decoys, err
}

func buildRing(src rand.Source, ringLength int, spend *model.SpendableOutput, candidates []uint64, source OutputSource, opts ...Option) (*model.Decoys, *FilterResult, error) {
	filtered, err := FilterOutputs(spend, candidates, source, opts...)
	if err != nil {
		return nil, nil, err
	}

	decoys, err := AssembleRing(src, ringLength, spend, filtered.Members)
	if err != nil {
		return nil, filtered, err
	}

	return decoys, filtered, nil
}
