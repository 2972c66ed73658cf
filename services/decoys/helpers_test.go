package decoys

import (
	"context"
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"filippo.io/edwards25519"
	"github.com/bsv-blockchain/ringselect/chaincfg"
	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/model"
	"github.com/bsv-blockchain/ringselect/settings"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.ChaCha8 {
	var key [32]byte

	binary.LittleEndian.PutUint64(key[:], seed)

	return rand.NewChaCha8(key)
}

// point returns [n]G, which is always torsion free.
func point(n uint64) *edwards25519.Point {
	var b [32]byte

	binary.LittleEndian.PutUint64(b[:], n)

	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return new(edwards25519.Point).ScalarBaseMult(s)
}

// torsioned returns a point on the curve carrying an order two component.
func torsioned(t *testing.T) *edwards25519.Point {
	var b [32]byte

	b[0] = 0xec
	for i := 1; i < 31; i++ {
		b[i] = 0xff
	}

	b[31] = 0x7f

	t2, err := new(edwards25519.Point).SetBytes(b[:])
	require.NoError(t, err)

	return new(edwards25519.Point).Add(edwards25519.NewGeneratorPoint(), t2)
}

func invalidCompressed(t *testing.T) model.CompressedPoint {
	for y := byte(2); y < 255; y++ {
		c := model.CompressedPoint{y}
		if _, ok := c.Decompress(); !ok {
			return c
		}
	}

	t.Fatal("no invalid encoding found")

	return model.CompressedPoint{}
}

func linearDistribution(n int) []uint64 {
	dist := make([]uint64, n)
	for i := range dist {
		dist[i] = uint64(i)
	}

	return dist
}

func txHash(index uint64) model.Hash {
	var h model.Hash

	binary.LittleEndian.PutUint64(h[:], index)
	h[31] = 0xaa

	return h
}

func spendAt(index uint64) *model.SpendableOutput {
	return &model.SpendableOutput{
		Index:      index,
		Key:        point(index + 1),
		Commitment: point(index + 100_001),
	}
}

// honestOutput is the record an honest node holds for output index on a chain with one
// output per block.
func honestOutput(index uint64) *model.OutputInfo {
	return &model.OutputInfo{
		Height:     index + 1,
		Unlocked:   true,
		Key:        model.NewCompressedPoint(point(index + 1)),
		Commitment: model.NewCompressedPoint(point(index + 100_001)),
		TxID:       txHash(index),
	}
}

func honestOutputs(indexes []uint64) []*model.OutputInfo {
	outs := make([]*model.OutputInfo, len(indexes))
	for i, index := range indexes {
		outs[i] = honestOutput(index)
	}

	return outs
}

func honestTransactions(indexes []uint64) []*model.TxTimelock {
	txs := make([]*model.TxTimelock, len(indexes))
	for i, index := range indexes {
		txs[i] = &model.TxTimelock{Hash: txHash(index)}
	}

	return txs
}

func testSettings(ringLength, candidateCount int, deterministic bool) *settings.Settings {
	return &settings.Settings{
		ServiceName:    "ringselect",
		LogLevel:       "INFO",
		ChainCfgParams: &chaincfg.MainNetParams,
		Decoys: settings.DecoySettings{
			RingLength:          ringLength,
			CandidateCount:      candidateCount,
			MaxSampleIterations: 100_000,
			Deterministic:       deterministic,
			MaxConcurrentInputs: 2,
		},
	}
}

// fakeLedger is an honest node over a chain with one output per block.
type fakeLedger struct {
	distribution []uint64
}

func (f *fakeLedger) GetOutputDistribution(_ context.Context, height uint64) ([]uint64, error) {
	if height > uint64(len(f.distribution)) {
		return nil, errors.New(errors.ERR_SERVICE_UNAVAILABLE, "height %d beyond chain tip", height)
	}

	return f.distribution[:height], nil
}

func (f *fakeLedger) GetOuts(_ context.Context, indexes []uint64) ([]*model.OutputInfo, error) {
	return honestOutputs(indexes), nil
}

func (f *fakeLedger) GetTransactions(_ context.Context, hashes []model.Hash) ([]*model.TxTimelock, error) {
	txs := make([]*model.TxTimelock, len(hashes))
	for i, h := range hashes {
		txs[i] = &model.TxTimelock{Hash: h}
	}

	return txs, nil
}

func requireRingIntegrity(t *testing.T, d *model.Decoys, spend *model.SpendableOutput, ringLength int) {
	t.Helper()

	require.Equal(t, ringLength, d.Len())
	require.Len(t, d.Offsets, ringLength)

	indexes := d.Indexes()
	for i := 1; i < len(indexes); i++ {
		require.Less(t, indexes[i-1], indexes[i])
	}

	require.Equal(t, spend.Index, indexes[d.SignerIndex])
	require.Equal(t, spend.Index, d.SignerIndexAbsolute())

	matches := 0

	for i, pair := range d.Ring {
		if pair[0].Equal(spend.Key) == 1 && pair[1].Equal(spend.Commitment) == 1 {
			matches++

			require.Equal(t, d.SignerIndex, i)

			continue
		}

		require.True(t, model.IsTorsionFree(pair[0]))
		require.True(t, model.IsTorsionFree(pair[1]))
	}

	require.Equal(t, 1, matches)

	signer := d.SignerRingMembers()
	require.Equal(t, 1, signer[0].Equal(spend.Key))
	require.Equal(t, 1, signer[1].Equal(spend.Commitment))
}
