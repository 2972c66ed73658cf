package settings

import (
	"github.com/bsv-blockchain/ringselect/chaincfg"
	"github.com/bsv-blockchain/ringselect/errors"
)

func NewSettings() *Settings {
	params, err := chaincfg.GetChainParams(getString("network", "mainnet"))
	if err != nil {
		panic(err)
	}

	return &Settings{
		ServiceName:    getString("SERVICE_NAME", "ringselect"),
		LogLevel:       getString("logLevel", "INFO"),
		PrettyLogs:     getBool("PRETTY_LOGS", true),
		ChainCfgParams: params,
		Decoys: DecoySettings{
			RingLength:          getInt("decoys_ringLength", params.DefaultRingLength),
			CandidateCount:      getInt("decoys_candidateCount", 20),
			MaxSampleIterations: getInt("decoys_maxSampleIterations", 1000),
			Deterministic:       getBool("decoys_deterministic", false),
			MaxConcurrentInputs: getInt("decoys_maxConcurrentInputs", 4),
		},
		Tracing: TracingSettings{
			Enabled:      getBool("tracing_enabled", false),
			CollectorURL: getURL("tracing_collectorURL", "http://localhost:4318"),
			SampleRate:   getFloat64("tracing_sampleRate", 0.01),
		},
	}
}

// Validate checks the decoy settings are usable for building rings.
func (s *Settings) Validate() error {
	if s.ChainCfgParams == nil {
		return errors.NewConfigurationError("no chain params configured")
	}

	d := s.Decoys

	if d.RingLength < 1 || d.RingLength > 255 {
		return errors.NewConfigurationError("decoys_ringLength must be between 1 and 255, got %d", d.RingLength)
	}

	if d.CandidateCount < d.RingLength-1 {
		return errors.NewConfigurationError("decoys_candidateCount (%d) must be at least decoys_ringLength-1 (%d)", d.CandidateCount, d.RingLength-1)
	}

	if d.MaxSampleIterations < 1 {
		return errors.NewConfigurationError("decoys_maxSampleIterations must be positive, got %d", d.MaxSampleIterations)
	}

	if d.MaxConcurrentInputs < 1 {
		return errors.NewConfigurationError("decoys_maxConcurrentInputs must be positive, got %d", d.MaxConcurrentInputs)
	}

	if s.Tracing.Enabled {
		if s.Tracing.CollectorURL == nil {
			return errors.NewConfigurationError("tracing_collectorURL is required when tracing is enabled")
		}

		if s.Tracing.SampleRate < 0 || s.Tracing.SampleRate > 1 {
			return errors.NewConfigurationError("tracing_sampleRate must be between 0 and 1, got %v", s.Tracing.SampleRate)
		}
	}

	return nil
}
