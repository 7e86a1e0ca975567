package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-service/internal/operator/actions"
	"github.com/carson-networks/transaction-service/internal/storage"
	"github.com/carson-networks/transaction-service/internal/storage/sqlconfig"
)

// ActionProcessor runs write actions inside a database transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator ActionProcessor
	now      func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{
		storage:  store,
		operator: processor,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateTransaction validates and stores a new transaction. The stored status
// is always pending regardless of input.Status.
func (s *TransactionService) CreateTransaction(ctx context.Context, input CreateTransaction) (*Transaction, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	action := &actions.CreateTransaction{
		ID:        id,
		AccountID: input.AccountID,
		Amount:    input.Amount,
		Type:      transactionTypeToStorage(input.Type),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if action.Created == nil {
		return nil, fmt.Errorf("%w: insert returned no row", ErrStorageFailure)
	}

	created := transactionFromStorage(action.Created)
	return &created, nil
}

// ListTransactions returns a page of transactions, most recent first.
func (s *TransactionService) ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]Transaction, error) {
	if err := validateInput(filter); err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		AccountID: filter.AccountID,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// UpdateTransactionStatus replaces the status of a transaction and sets
// processed_at to the current time. There are no transition rules.
func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status TransactionStatus) (*Transaction, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	action := &actions.UpdateTransactionStatus{
		ID:          id,
		Status:      transactionStatusToStorage(status),
		ProcessedAt: s.now(),
	}
	err := s.operator.Process(ctx, action)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if action.Updated == nil {
		return nil, fmt.Errorf("%w: update returned no row", ErrStorageFailure)
	}

	updated := transactionFromStorage(action.Updated)
	return &updated, nil
}

// GetAnalytics summarizes every transaction, optionally restricted to one account.
func (s *TransactionService) GetAnalytics(ctx context.Context, accountID *string) (*AnalyticsSummary, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{AccountID: accountID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}

	summary := summarize(transactions)
	return &summary, nil
}
