package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/transaction-service/internal/service"
)

// mockTransactionService implements every transaction handler interface.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, input service.CreateTransaction) (*service.Transaction, error) {
	args := m.Called(ctx, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, filter service.ListTransactionsFilter) ([]service.Transaction, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status service.TransactionStatus) (*service.Transaction, error) {
	args := m.Called(ctx, id, status)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}
