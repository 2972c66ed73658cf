package settings

import (
	"net/url"

	"github.com/bsv-blockchain/ringselect/chaincfg"
)

// DecoySettings configures how rings are built for each spent output.
type DecoySettings struct {
	// RingLength is the number of members per ring, real spend included.
	RingLength int
	// CandidateCount is how many decoy candidates are sampled per input before
	// filtering. It should exceed RingLength-1 to absorb rejected candidates.
	CandidateCount int
	// MaxSampleIterations caps the draws spent hunting for unique candidates.
	MaxSampleIterations int
	// Deterministic selects the filter that verifies unlock status locally
	// instead of trusting the node's unlocked flag.
	Deterministic bool
	// MaxConcurrentInputs bounds how many inputs are prepared at once.
	MaxConcurrentInputs int
}

type TracingSettings struct {
	Enabled      bool
	CollectorURL *url.URL
	SampleRate   float64
}

type Settings struct {
	ServiceName    string
	LogLevel       string
	PrettyLogs     bool
	ChainCfgParams *chaincfg.Params
	Decoys         DecoySettings
	Tracing        TracingSettings
}
