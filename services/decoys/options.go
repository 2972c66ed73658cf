package decoys

import (
	"github.com/bsv-blockchain/ringselect/chaincfg"
)

// DefaultMaxSampleIterations caps the draws SampleCandidates makes before giving up.
const DefaultMaxSampleIterations = 1000

type Options struct {
	chainParams         *chaincfg.Params
	maxSampleIterations int
}

// Option is a function that sets some option on the Options struct
type Option func(*Options)

func NewDefaultOptions() *Options {
	return &Options{
		chainParams:         &chaincfg.MainNetParams,
		maxSampleIterations: DefaultMaxSampleIterations,
	}
}

func ProcessOptions(opts ...Option) *Options {
	options := NewDefaultOptions()
	for _, o := range opts {
		o(options)
	}

	return options
}

// WithChainParams sets the network whose protocol constants govern sampling and filtering.
func WithChainParams(params *chaincfg.Params) Option {
	return func(o *Options) {
		if params != nil {
			o.chainParams = params
		}
	}
}

// WithMaxSampleIterations sets how many draws the sampler may make. Values below one are ignored.
func WithMaxSampleIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxSampleIterations = n
		}
	}
}
