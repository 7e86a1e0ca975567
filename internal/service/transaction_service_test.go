package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transaction-service/internal/operator/actions"
	"github.com/carson-networks/transaction-service/internal/storage"
	"github.com/carson-networks/transaction-service/internal/storage/sqlconfig"
)

var fixedNow = time.Date(2025, 7, 1, 15, 0, 0, 0, time.UTC)

// inlineProcessor performs actions synchronously against the mocked table.
type inlineProcessor struct {
	writer *storage.Writer
	err    error
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

func newTestService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable, *inlineProcessor) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	processor := &inlineProcessor{writer: &storage.Writer{Transaction: mockTable}}
	svc := NewTransactionService(store, processor)
	svc.now = func() time.Time { return fixedNow }
	return svc, mockTable, processor
}

func makeStorageRow(accountID string, amount float64, txType sqlconfig.TransactionType, status sqlconfig.TransactionStatus) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: accountID,
		Amount:    amount,
		Type:      txType,
		Status:    status,
		CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	requested := TransactionStatusCompleted
	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.ID != uuid.Nil &&
			c.AccountID == "acct-1" &&
			c.Amount == 100.5 &&
			c.Type == sqlconfig.TransactionTypeDeposit &&
			c.Status == sqlconfig.TransactionStatusPending
	})).RunAndReturn(func(_ context.Context, c *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
		row := makeStorageRow(c.AccountID, c.Amount, c.Type, c.Status)
		row.ID = c.ID
		return row, nil
	})

	tx, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		AccountID: "acct-1",
		Amount:    100.5,
		Type:      TransactionTypeDeposit,
		Status:    &requested,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, "acct-1", tx.AccountID)
	assert.Equal(t, 100.5, tx.Amount)
	assert.Equal(t, TransactionTypeDeposit, tx.Type)
	assert.Equal(t, TransactionStatusPending, tx.Status, "status is always forced to pending")
	assert.False(t, tx.CreatedAt.IsZero())
	assert.Nil(t, tx.ProcessedAt)
}

func TestCreateTransaction_DistinctIDs(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
			row := makeStorageRow(c.AccountID, c.Amount, c.Type, c.Status)
			row.ID = c.ID
			return row, nil
		}).Twice()

	input := CreateTransaction{AccountID: "acct-1", Amount: 1, Type: TransactionTypeTransfer}
	first, err := svc.CreateTransaction(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.CreateTransaction(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	bogusStatus := TransactionStatus("settled")
	tests := []struct {
		name  string
		input CreateTransaction
	}{
		{"empty account", CreateTransaction{AccountID: "", Amount: 1, Type: TransactionTypeDeposit}},
		{"account too long", CreateTransaction{AccountID: strings.Repeat("a", 37), Amount: 1, Type: TransactionTypeDeposit}},
		{"unknown type", CreateTransaction{AccountID: "acct-1", Amount: 1, Type: "refund"}},
		{"missing type", CreateTransaction{AccountID: "acct-1", Amount: 1}},
		{"unknown status", CreateTransaction{AccountID: "acct-1", Amount: 1, Type: TransactionTypeDeposit, Status: &bogusStatus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)

			tx, err := svc.CreateTransaction(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, tx)
		})
	}
}

func TestCreateTransaction_AccountIDAtLimit(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	accountID := strings.Repeat("a", 36)
	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(makeStorageRow(accountID, -5, sqlconfig.TransactionTypeWithdrawal, sqlconfig.TransactionStatusPending), nil)

	tx, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		AccountID: accountID,
		Amount:    -5,
		Type:      TransactionTypeWithdrawal,
	})
	require.NoError(t, err)
	assert.Equal(t, -5.0, tx.Amount)
}

func TestCreateTransaction_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	tx, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		AccountID: "acct-1",
		Amount:    10,
		Type:      TransactionTypeDeposit,
	})

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorContains(t, err, "connection refused")
	assert.Nil(t, tx)
}

func TestCreateTransaction_ProcessorError(t *testing.T) {
	svc, _, processor := newTestService(t)
	processor.err = context.DeadlineExceeded

	tx, err := svc.CreateTransaction(context.Background(), CreateTransaction{
		AccountID: "acct-1",
		Amount:    10,
		Type:      TransactionTypeDeposit,
	})

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, tx)
}

// -- ListTransactions tests --

func TestListTransactions_Success(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	accountID := "acct-1"
	rows := []*sqlconfig.Transaction{
		makeStorageRow(accountID, 10, sqlconfig.TransactionTypeDeposit, sqlconfig.TransactionStatusCompleted),
		makeStorageRow(accountID, 20, sqlconfig.TransactionTypeWithdrawal, sqlconfig.TransactionStatusPending),
	}

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == accountID && f.Limit == 10 && f.Offset == 5
	})).Return(rows, nil)

	txs, err := svc.ListTransactions(context.Background(), ListTransactionsFilter{
		AccountID: &accountID,
		Limit:     10,
		Offset:    5,
	})

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, rows[0].ID, txs[0].ID)
	assert.Equal(t, TransactionStatusCompleted, txs[0].Status)
	assert.Equal(t, rows[1].ID, txs[1].ID)
	assert.Equal(t, TransactionTypeWithdrawal, txs[1].Type)
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.AccountID == nil && f.Limit == 100 && f.Offset == 0
	})).Return([]*sqlconfig.Transaction{}, nil)

	txs, err := svc.ListTransactions(context.Background(), ListTransactionsFilter{Limit: 100})

	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestListTransactions_ValidationErrors(t *testing.T) {
	empty := ""
	tooLong := strings.Repeat("a", 37)
	tests := []struct {
		name   string
		filter ListTransactionsFilter
	}{
		{"zero limit", ListTransactionsFilter{Limit: 0}},
		{"limit above max", ListTransactionsFilter{Limit: 101}},
		{"negative offset", ListTransactionsFilter{Limit: 10, Offset: -1}},
		{"empty account", ListTransactionsFilter{Limit: 10, AccountID: &empty}},
		{"account too long", ListTransactionsFilter{Limit: 10, AccountID: &tooLong}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t)

			txs, err := svc.ListTransactions(context.Background(), tt.filter)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, txs)
		})
	}
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	txs, err := svc.ListTransactions(context.Background(), ListTransactionsFilter{Limit: 10})

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Nil(t, txs)
}

// -- GetTransaction tests --

func TestGetTransaction_Success(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	row := makeStorageRow("acct-1", 10, sqlconfig.TransactionTypeDeposit, sqlconfig.TransactionStatusPending)
	mockTable.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)

	tx, err := svc.GetTransaction(context.Background(), row.ID)

	require.NoError(t, err)
	assert.Equal(t, row.ID, tx.ID)
	assert.Equal(t, row.CreatedAt, tx.CreatedAt)
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, sql.ErrNoRows)

	tx, err := svc.GetTransaction(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, tx)
}

func TestGetTransaction_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("timeout"))

	tx, err := svc.GetTransaction(context.Background(), id)

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Nil(t, tx)
}

// -- UpdateTransactionStatus tests --

func TestUpdateTransactionStatus_Success(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	row := makeStorageRow("acct-1", 10, sqlconfig.TransactionTypeDeposit, sqlconfig.TransactionStatusPending)
	mockTable.EXPECT().UpdateStatus(mock.Anything, row.ID, sqlconfig.TransactionStatusCompleted, fixedNow).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, status sqlconfig.TransactionStatus, processedAt time.Time) (*sqlconfig.Transaction, error) {
			updated := *row
			updated.Status = status
			updated.ProcessedAt = &processedAt
			return &updated, nil
		})

	tx, err := svc.UpdateTransactionStatus(context.Background(), row.ID, TransactionStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, TransactionStatusCompleted, tx.Status)
	require.NotNil(t, tx.ProcessedAt)
	assert.Equal(t, fixedNow, *tx.ProcessedAt)
	assert.Equal(t, row.CreatedAt, tx.CreatedAt, "created_at is untouched")
}

func TestUpdateTransactionStatus_AnyTransitionAllowed(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	row := makeStorageRow("acct-1", 10, sqlconfig.TransactionTypeDeposit, sqlconfig.TransactionStatusFailed)
	mockTable.EXPECT().UpdateStatus(mock.Anything, row.ID, sqlconfig.TransactionStatusPending, fixedNow).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, status sqlconfig.TransactionStatus, processedAt time.Time) (*sqlconfig.Transaction, error) {
			updated := *row
			updated.Status = status
			updated.ProcessedAt = &processedAt
			return &updated, nil
		})

	tx, err := svc.UpdateTransactionStatus(context.Background(), row.ID, TransactionStatusPending)

	require.NoError(t, err)
	assert.Equal(t, TransactionStatusPending, tx.Status)
	assert.NotNil(t, tx.ProcessedAt, "processed_at is set even when returning to pending")
}

func TestUpdateTransactionStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	tx, err := svc.UpdateTransactionStatus(context.Background(), uuid.Must(uuid.NewV4()), "settled")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, tx)
}

func TestUpdateTransactionStatus_NotFound(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().UpdateStatus(mock.Anything, id, sqlconfig.TransactionStatusCompleted, fixedNow).
		Return(nil, sql.ErrNoRows)

	tx, err := svc.UpdateTransactionStatus(context.Background(), id, TransactionStatusCompleted)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStorageFailure)
	assert.Nil(t, tx)
}

func TestUpdateTransactionStatus_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().UpdateStatus(mock.Anything, id, sqlconfig.TransactionStatusFailed, fixedNow).
		Return(nil, errors.New("deadlock detected"))

	tx, err := svc.UpdateTransactionStatus(context.Background(), id, TransactionStatusFailed)

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Nil(t, tx)
}

// -- GetAnalytics tests --

func TestGetAnalytics_CompletedOnlySums(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	accountID := "acct-1"
	rows := []*sqlconfig.Transaction{
		makeStorageRow(accountID, 100, sqlconfig.TransactionTypeDeposit, sqlconfig.TransactionStatusCompleted),
		makeStorageRow(accountID, 30, sqlconfig.TransactionTypeWithdrawal, sqlconfig.TransactionStatusCompleted),
		makeStorageRow(accountID, 50, sqlconfig.TransactionTypeDeposit, sqlconfig.TransactionStatusPending),
	}
	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == accountID && f.Limit == 0 && f.Offset == 0
	})).Return(rows, nil)

	summary, err := svc.GetAnalytics(context.Background(), &accountID)

	require.NoError(t, err)
	assert.Equal(t, AnalyticsSummary{
		TotalTransactions: 3,
		Completed:         2,
		Pending:           1,
		Failed:            0,
		TotalDeposits:     100,
		TotalWithdrawals:  30,
		NetFlow:           70,
	}, *summary)
}

func TestGetAnalytics_NoTransactions(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.AccountID == nil
	})).Return(nil, nil)

	summary, err := svc.GetAnalytics(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, AnalyticsSummary{}, *summary)
}

func TestGetAnalytics_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	summary, err := svc.GetAnalytics(context.Background(), nil)

	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Nil(t, summary)
}
