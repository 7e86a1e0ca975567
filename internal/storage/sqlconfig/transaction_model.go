package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID         `db:"id"`
	AccountID   string            `db:"account_id"`
	Amount      float64           `db:"amount"`
	Type        TransactionType   `db:"type"`
	Status      TransactionStatus `db:"status"`
	CreatedAt   time.Time         `db:"created_at"`
	ProcessedAt *time.Time        `db:"processed_at"`
}

// TransactionCreate is the input for creating a new transaction.
// created_at and processed_at are left to the database.
type TransactionCreate struct {
	ID        uuid.UUID
	AccountID string
	Amount    float64
	Type      TransactionType
	Status    TransactionStatus
}

// TransactionFilter specifies filters for listing transactions.
// A zero Limit returns every matching row.
type TransactionFilter struct {
	AccountID *string
	Limit     int
	Offset    int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
// FindByID and UpdateStatus return sql.ErrNoRows when no row has the given id.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status TransactionStatus, processedAt time.Time) (*Transaction, error)
}
