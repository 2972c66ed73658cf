package decoys

import (
	"context"

	"github.com/bsv-blockchain/ringselect/model"
	"github.com/stretchr/testify/mock"
)

var _ LedgerClient = (*MockLedgerClient)(nil)

type MockLedgerClient struct {
	mock.Mock
}

func (m *MockLedgerClient) GetOutputDistribution(_ context.Context, height uint64) ([]uint64, error) {
	args := m.Called(height)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]uint64), nil
}

func (m *MockLedgerClient) GetOuts(_ context.Context, indexes []uint64) ([]*model.OutputInfo, error) {
	args := m.Called(indexes)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*model.OutputInfo), nil
}

func (m *MockLedgerClient) GetTransactions(_ context.Context, hashes []model.Hash) ([]*model.TxTimelock, error) {
	args := m.Called(hashes)

	if args.Error(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*model.TxTimelock), nil
}
