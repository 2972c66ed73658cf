package main

import (
	"io"
	"math/rand/v2"

	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/model"
	"github.com/bsv-blockchain/ringselect/services/decoys"
	"github.com/bsv-blockchain/ringselect/settings"
	"github.com/bsv-blockchain/ringselect/ulogger"
)

type sampleRequest struct {
	OutputBeingSpentIndex uint64   `json:"output_being_spent_index"`
	Distribution          []uint64 `json:"distribution"`
	CandidatesLen         int      `json:"candidates_len"`
}

type sampleResponse struct {
	Candidates []uint64 `json:"candidates"`
}

type spendJSON struct {
	Index      uint64                `json:"index"`
	Key        model.CompressedPoint `json:"key"`
	Commitment model.CompressedPoint `json:"commitment"`
}

type buildRequest struct {
	RingLen      int                 `json:"ring_len,omitempty"`
	Spend        spendJSON           `json:"output_being_spent"`
	Candidates   []uint64            `json:"candidates"`
	Outs         []*model.OutputInfo `json:"outs"`
	Transactions []*model.TxTimelock `json:"transactions,omitempty"`
	Height       uint64              `json:"height,omitempty"`
}

type buildResponse struct {
	Offsets     []uint64                   `json:"offsets"`
	SignerIndex int                        `json:"signer_index"`
	Ring        [][2]model.CompressedPoint `json:"ring"`
}

func runSample(tSettings *settings.Settings, logger ulogger.Logger, src rand.Source, r io.Reader, w io.Writer) error {
	var req sampleRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return errors.NewInvalidArgumentError("invalid sample request", err)
	}

	candidatesLen := req.CandidatesLen
	if candidatesLen == 0 {
		candidatesLen = tSettings.Decoys.CandidateCount
	}

	candidates, err := decoys.SampleCandidates(src, req.OutputBeingSpentIndex, req.Distribution, candidatesLen,
		decoys.WithChainParams(tSettings.ChainCfgParams),
		decoys.WithMaxSampleIterations(tSettings.Decoys.MaxSampleIterations),
	)
	if err != nil {
		return err
	}

	logger.Debugf("[sample] %d candidates for output %d over %d blocks", len(candidates)-1, req.OutputBeingSpentIndex, len(req.Distribution))

	return writeJSON(w, sampleResponse{Candidates: candidates})
}

func runBuild(tSettings *settings.Settings, logger ulogger.Logger, src rand.Source, r io.Reader, w io.Writer) error {
	var req buildRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return errors.NewInvalidArgumentError("invalid build request", err)
	}

	spend, err := req.Spend.spendable()
	if err != nil {
		return err
	}

	ringLen := req.RingLen
	if ringLen == 0 {
		ringLen = tSettings.Decoys.RingLength
	}

	var source decoys.OutputSource = decoys.TrustedOutputs{Outputs: req.Outs}

	if req.Transactions != nil {
		if req.Height == 0 {
			return errors.NewInvalidArgumentError("height is required when transactions are supplied")
		}

		source = decoys.DeterministicOutputs{
			Outputs:      req.Outs,
			Transactions: req.Transactions,
			Height:       req.Height,
		}
	}

	ring, err := decoys.BuildRing(src, ringLen, spend, req.Candidates, source, decoys.WithChainParams(tSettings.ChainCfgParams))
	if err != nil {
		return err
	}

	logger.Debugf("[build] ring of %d for output %d, signer at %d", ring.Len(), spend.Index, ring.SignerIndex)

	res := buildResponse{
		Offsets:     ring.Offsets,
		SignerIndex: ring.SignerIndex,
		Ring:        make([][2]model.CompressedPoint, ring.Len()),
	}

	for i, pair := range ring.Ring {
		res.Ring[i] = [2]model.CompressedPoint{model.NewCompressedPoint(pair[0]), model.NewCompressedPoint(pair[1])}
	}

	return writeJSON(w, res)
}

func (s spendJSON) spendable() (*model.SpendableOutput, error) {
	key, ok := s.Key.Decompress()
	if !ok {
		return nil, errors.NewInvalidArgumentError("spend key %s is not a valid point", s.Key)
	}

	commitment, ok := s.Commitment.Decompress()
	if !ok {
		return nil, errors.NewInvalidArgumentError("spend commitment %s is not a valid point", s.Commitment)
	}

	return &model.SpendableOutput{
		Index:      s.Index,
		Key:        key,
		Commitment: commitment,
	}, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.NewProcessingError("cannot encode response", err)
	}

	b = append(b, '\n')

	if _, err = w.Write(b); err != nil {
		return errors.NewProcessingError("cannot write response", err)
	}

	return nil
}
