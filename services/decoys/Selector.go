package decoys

import (
	"context"
	"math/rand/v2"
	"strconv"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/model"
	"github.com/bsv-blockchain/ringselect/settings"
	"github.com/bsv-blockchain/ringselect/tracing"
	"github.com/bsv-blockchain/ringselect/ulogger"
	"github.com/ordishs/gocore"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Selector builds rings for spent outputs using chain data fetched from a LedgerClient.
// It holds no per-spend state and is safe for concurrent use.
type Selector struct {
	logger   ulogger.Logger
	settings *settings.Settings
}

func New(logger ulogger.Logger, tSettings *settings.Settings) *Selector {
	initPrometheusMetrics()

	return &Selector{
		logger:   logger,
		settings: tSettings,
	}
}

// SelectInput builds the ring for one spent output against the chain as of height.
func (s *Selector) SelectInput(ctx context.Context, client LedgerClient, spend *model.SpendableOutput, height uint64) (*model.Decoys, error) {
	src, err := NewSecureSource()
	if err != nil {
		return nil, err
	}

	return s.selectInput(ctx, client, spend, height, src)
}

// SelectInputs builds a ring for every spend, at most MaxConcurrentInputs at a time. Each
// input draws from its own freshly keyed random stream. Rings are returned in spend order.
func (s *Selector) SelectInputs(ctx context.Context, client LedgerClient, spends []*model.SpendableOutput, height uint64) (result []*model.Decoys, err error) {
	ctx, _, deferFn := tracing.StartTracing(ctx, "decoys:SelectInputs",
		tracing.WithHistogram(prometheusSelectInputs),
		tracing.WithLogMessage(s.logger, "[SelectInputs] selecting rings for %d inputs at height %d", len(spends), height),
	)
	defer func() {
		deferFn(err)
	}()

	if err = s.settings.Validate(); err != nil {
		return nil, err
	}

	sources := make([]rand.Source, len(spends))
	for i := range spends {
		if sources[i], err = NewSecureSource(); err != nil {
			return nil, err
		}
	}

	return s.selectInputs(ctx, client, spends, height, sources)
}

func (s *Selector) selectInputs(ctx context.Context, client LedgerClient, spends []*model.SpendableOutput, height uint64, sources []rand.Source) ([]*model.Decoys, error) {
	result := make([]*model.Decoys, len(spends))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.Decoys.MaxConcurrentInputs)

	for i, spend := range spends {
		g.Go(func() error {
			decoys, err := s.selectInput(gCtx, client, spend, height, sources[i])
			if err != nil {
				return errors.NewProcessingError("[SelectInputs] input %d", i, err)
			}

			result[i] = decoys

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Selector) selectInput(ctx context.Context, client LedgerClient, spend *model.SpendableOutput, height uint64, src rand.Source) (decoys *model.Decoys, err error) {
	if err = spend.Validate(); err != nil {
		return nil, err
	}

	ctx, stat, deferFn := tracing.StartTracing(ctx, "decoys:SelectInput",
		tracing.WithHistogram(prometheusSelectInput),
		tracing.WithAttributes(
			attribute.String("output_index", strconv.FormatUint(spend.Index, 10)),
			attribute.String("height", strconv.FormatUint(height, 10)),
		),
		tracing.WithLogMessage(s.logger, "[SelectInput] selecting ring for output %d", spend.Index),
	)
	defer func() {
		s.countFault(err)
		deferFn(err)
	}()

	if err = ctx.Err(); err != nil {
		return nil, errors.NewContextCanceledError("[SelectInput] aborted before fetching distribution", err)
	}

	d := s.settings.Decoys
	params := s.settings.ChainCfgParams
	opts := []Option{
		WithChainParams(params),
		WithMaxSampleIterations(d.MaxSampleIterations),
	}

	distribution, err := client.GetOutputDistribution(ctx, height)
	if err != nil {
		return nil, errors.NewServiceError("[SelectInput] failed to get output distribution", err)
	}

	expected, err := safeconversion.Uint64ToInt(height)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("[SelectInput] invalid height %d", height, err)
	}

	if len(distribution) != expected {
		return nil, errors.NewNodeDishonestCountErr("distribution length", expected, len(distribution))
	}

	if err = model.OutputDistribution(distribution).Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.sample(ctx, stat, src, spend.Index, distribution, d.CandidateCount, opts...)
	if err != nil {
		return nil, err
	}

	outs, err := client.GetOuts(ctx, candidates)
	if err != nil {
		return nil, errors.NewServiceError("[SelectInput] failed to get outputs", err)
	}

	var source OutputSource = TrustedOutputs{Outputs: outs}

	if d.Deterministic {
		hashes := make([]model.Hash, len(outs))
		for i, out := range outs {
			if out != nil {
				hashes[i] = out.TxID
			}
		}

		txs, err := client.GetTransactions(ctx, hashes)
		if err != nil {
			return nil, errors.NewServiceError("[SelectInput] failed to get transactions", err)
		}

		source = DeterministicOutputs{
			Outputs:      outs,
			Transactions: txs,
			Height:       height,
		}
	}

	decoys, filtered, err := buildRing(src, d.RingLength, spend, candidates, source, opts...)

	if filtered != nil {
		for reason, n := range filtered.Rejected {
			prometheusRejectedCandidates.WithLabelValues(string(reason)).Add(float64(n))
		}

		if len(filtered.Rejected) > 0 {
			s.logger.Debugf("[SelectInput] output %d: %d of %d candidates verified, rejected %v", spend.Index, len(filtered.Members), len(candidates)-1, filtered.Rejected)
		}
	}

	if err != nil {
		return nil, err
	}

	prometheusRingsBuilt.Inc()

	return decoys, nil
}

func (s *Selector) sample(ctx context.Context, parent *gocore.Stat, src rand.Source, realIndex uint64, distribution []uint64, candidateCount int, opts ...Option) ([]uint64, error) {
	_, _, deferFn := tracing.StartTracing(ctx, "decoys:SampleCandidates",
		tracing.WithParentStat(parent),
		tracing.WithHistogram(prometheusSampleCandidates),
	)

	candidates, err := SampleCandidates(src, realIndex, distribution, candidateCount, opts...)

	deferFn(err)

	return candidates, err
}

func (s *Selector) countFault(err error) {
	if err == nil {
		return
	}

	switch {
	case errors.IsMaliciousResponseError(err):
		prometheusNodeDishonest.Inc()
		s.logger.Warnf("[SelectInput] rejected node response: %v", err)
	case errors.Is(err, errors.ErrSamplingExhausted):
		prometheusSamplingExhausted.Inc()
		s.logger.Warnf("[SelectInput] %v", err)
	case errors.Is(err, errors.ErrInsufficientDecoys):
		prometheusInsufficientDecoys.Inc()
		s.logger.Warnf("[SelectInput] %v", err)
	}
}
