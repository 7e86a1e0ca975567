package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-service/internal/storage"
	"github.com/carson-networks/transaction-service/internal/storage/sqlconfig"
)

// CreateTransaction inserts a new pending transaction. Created holds the stored row after Perform.
type CreateTransaction struct {
	ID        uuid.UUID
	AccountID string
	Amount    float64
	Type      sqlconfig.TransactionType

	Created *sqlconfig.Transaction
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	storageCreate := &sqlconfig.TransactionCreate{
		ID:        t.ID,
		AccountID: t.AccountID,
		Amount:    t.Amount,
		Type:      t.Type,
		Status:    sqlconfig.TransactionStatusPending,
	}
	created, err := writer.Transaction.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	t.Created = created
	return nil
}
