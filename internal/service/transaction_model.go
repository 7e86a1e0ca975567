package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-service/internal/storage/sqlconfig"
)

// TransactionType is the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

// TransactionStatus is the lifecycle status of a transaction. Any status may
// be replaced by any other.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	AccountID   string
	Amount      float64
	Type        TransactionType
	Status      TransactionStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// CreateTransaction is the input for creating a transaction. Status is accepted
// for compatibility and ignored; new transactions are always pending.
type CreateTransaction struct {
	AccountID string             `validate:"required,min=1,max=36"`
	Amount    float64
	Type      TransactionType    `validate:"required,oneof=deposit withdrawal transfer"`
	Status    *TransactionStatus `validate:"omitempty,oneof=pending completed failed"`
}

// ListTransactionsFilter selects a page of transactions.
type ListTransactionsFilter struct {
	AccountID *string `validate:"omitempty,min=1,max=36"`
	Limit     int     `validate:"min=1,max=100"`
	Offset    int     `validate:"min=0"`
}

// AnalyticsSummary aggregates a set of transactions. Sums only include completed rows.
type AnalyticsSummary struct {
	TotalTransactions int
	Completed         int
	Pending           int
	Failed            int
	TotalDeposits     float64
	TotalWithdrawals  float64
	NetFlow           float64
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Amount:      row.Amount,
		Type:        TransactionType(row.Type),
		Status:      TransactionStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		ProcessedAt: row.ProcessedAt,
	}
}

func transactionTypeToStorage(t TransactionType) sqlconfig.TransactionType {
	return sqlconfig.TransactionType(t)
}

func transactionStatusToStorage(s TransactionStatus) sqlconfig.TransactionStatus {
	return sqlconfig.TransactionStatus(s)
}
