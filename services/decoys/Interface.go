/*
Package decoys selects decoy outputs and assembles rings for spending an output.

The engine is three pure steps run in order: SampleCandidates draws candidate global
output indexes from an age weighted model over the output distribution, FilterOutputs
verifies the records a node returned for those candidates, and AssembleRing merges the
real spend with a uniform subset of the verified pool. BuildRing composes the last two.
Selector drives a LedgerClient between the steps for one or many inputs.

Usage:

	selector := decoys.New(logger, tSettings)
	ring, err := selector.SelectInput(ctx, client, spend, height)
*/
package decoys

import (
	"context"

	"github.com/bsv-blockchain/ringselect/model"
)

// LedgerClient fetches chain data from a node. The node is untrusted: every response
// is positionally checked against the request and any deviation is treated as dishonesty.
// A node that cannot be reached should be reported with errors.ERR_SERVICE_UNAVAILABLE.
type LedgerClient interface {
	// GetOutputDistribution returns the cumulative output count for every block below height.
	GetOutputDistribution(ctx context.Context, height uint64) ([]uint64, error)

	// GetOuts returns one record per requested global output index, in request order.
	GetOuts(ctx context.Context, indexes []uint64) ([]*model.OutputInfo, error)

	// GetTransactions returns the timelock of each requested transaction, in request order.
	GetTransactions(ctx context.Context, hashes []model.Hash) ([]*model.TxTimelock, error)
}
