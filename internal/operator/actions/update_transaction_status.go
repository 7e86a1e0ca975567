package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-service/internal/storage"
	"github.com/carson-networks/transaction-service/internal/storage/sqlconfig"
)

// UpdateTransactionStatus overwrites the status of an existing transaction and
// stamps processed_at. Perform returns sql.ErrNoRows when the id is unknown.
type UpdateTransactionStatus struct {
	ID          uuid.UUID
	Status      sqlconfig.TransactionStatus
	ProcessedAt time.Time

	Updated *sqlconfig.Transaction
	IAction
}

func (u *UpdateTransactionStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Transaction.UpdateStatus(ctx, u.ID, u.Status, u.ProcessedAt)
	if err != nil {
		return err
	}

	u.Updated = updated
	return nil
}
