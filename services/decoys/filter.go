package decoys

import (
	"github.com/bsv-blockchain/ringselect/chaincfg"
	"github.com/bsv-blockchain/ringselect/errors"
	"github.com/bsv-blockchain/ringselect/model"
	"github.com/bsv-blockchain/ringselect/util"
)

// OutputSource is the node data for a candidate set. It is either TrustedOutputs or
// DeterministicOutputs, and the variant decides how unlock status is established.
type OutputSource interface {
	outputs() []*model.OutputInfo
}

// TrustedOutputs takes the node's unlocked flag at face value.
type TrustedOutputs struct {
	Outputs []*model.OutputInfo
}

func (t TrustedOutputs) outputs() []*model.OutputInfo { return t.Outputs }

// DeterministicOutputs ignores the node's unlocked flag and derives unlock status from
// each output's height and its owning transaction's timelock at Height.
type DeterministicOutputs struct {
	Outputs      []*model.OutputInfo
	Transactions []*model.TxTimelock
	Height       uint64
}

func (d DeterministicOutputs) outputs() []*model.OutputInfo { return d.Outputs }

// RejectReason says why a candidate was left out of the decoy pool.
type RejectReason string

const (
	RejectLocked       RejectReason = "locked"
	RejectInvalidPoint RejectReason = "invalid_point"
	RejectTorsion      RejectReason = "torsion"
	RejectTimelock     RejectReason = "timelock"
)

// FilterResult is the verified decoy pool along with what was turned away.
type FilterResult struct {
	Members  []model.RingMember
	Rejected map[RejectReason]int
}

// FilterOutputs verifies the records returned for candidates and keeps those usable as
// decoys. candidates must be strictly ascending and contain spend.Index. The record at
// the spend's position must carry the spend's exact key and commitment; it is checked but
// never added to the pool.
func FilterOutputs(spend *model.SpendableOutput, candidates []uint64, source OutputSource, opts ...Option) (*FilterResult, error) {
	if err := spend.Validate(); err != nil {
		return nil, err
	}

	if source == nil {
		return nil, errors.NewInvalidArgumentError("output source is required")
	}

	for i := 1; i < len(candidates); i++ {
		if candidates[i] <= candidates[i-1] {
			return nil, errors.NewInvalidArgumentError("candidates must be sorted and unique, %d follows %d at position %d", candidates[i], candidates[i-1], i)
		}
	}

	params := ProcessOptions(opts...).chainParams

	realPosition, found := util.SearchSorted(candidates, spend.Index)
	if !found {
		return nil, errors.NewInvalidArgumentError("candidates do not include the real spend %d", spend.Index)
	}

	outs := source.outputs()
	if len(outs) != len(candidates) {
		return nil, errors.NewNodeDishonestCountErr("output count", len(candidates), len(outs))
	}

	var unlocked func(i int, out *model.OutputInfo) (RejectReason, bool, error)

	switch s := source.(type) {
	case TrustedOutputs:
		unlocked = func(_ int, out *model.OutputInfo) (RejectReason, bool, error) {
			return RejectLocked, out.Unlocked, nil
		}
	case DeterministicOutputs:
		if len(s.Transactions) != len(candidates) {
			return nil, errors.NewNodeDishonestCountErr("transaction count", len(candidates), len(s.Transactions))
		}

		unlocked = func(i int, out *model.OutputInfo) (RejectReason, bool, error) {
			tx := s.Transactions[i]
			if tx == nil || tx.Hash != out.TxID {
				return "", false, errors.NewNodeDishonestOutputErr("transaction does not match output", candidates[i], i)
			}

			return deterministicUnlocked(params, s.Height, out, tx)
		}
	default:
		return nil, errors.NewInvalidArgumentError("unsupported output source %T", source)
	}

	result := &FilterResult{
		Members:  make([]model.RingMember, 0, len(candidates)-1),
		Rejected: make(map[RejectReason]int),
	}

	for i, out := range outs {
		if out == nil {
			return nil, errors.NewNodeDishonestOutputErr("missing output record", candidates[i], i)
		}

		if i == realPosition {
			if !spend.Matches(out) {
				return nil, errors.NewNodeDishonestOutputErr("real spend key or commitment mismatch", candidates[i], i)
			}

			continue
		}

		reason, ok, err := unlocked(i, out)
		if err != nil {
			return nil, err
		}

		if !ok {
			result.Rejected[reason]++
			continue
		}

		key, ok := out.Key.Decompress()
		if !ok {
			result.Rejected[RejectInvalidPoint]++
			continue
		}

		commitment, ok := out.Commitment.Decompress()
		if !ok {
			result.Rejected[RejectInvalidPoint]++
			continue
		}

		if !model.IsTorsionFree(key) || !model.IsTorsionFree(commitment) {
			result.Rejected[RejectTorsion]++
			continue
		}

		result.Members = append(result.Members, model.RingMember{
			Index:      candidates[i],
			Key:        key,
			Commitment: commitment,
		})
	}

	return result, nil
}

// deterministicUnlocked applies the protocol's spendability rules to an output at height:
// the output must be buried by the lock window and its transaction's timelock must be met
// at height-1, widened by the accepted timelock delta.
func deterministicUnlocked(params *chaincfg.Params, height uint64, out *model.OutputInfo, tx *model.TxTimelock) (RejectReason, bool, error) {
	if out.Height > height || height-out.Height < params.DefaultLockWindow {
		return RejectLocked, false, nil
	}

	if !util.TimelockSatisfied(tx.UnlockTime, saturatingSub(height+params.AcceptedTimelockDelta, 1), params.MaxBlockNumber) {
		return RejectTimelock, false, nil
	}

	return "", true, nil
}
