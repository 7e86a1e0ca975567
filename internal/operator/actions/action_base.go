package actions

import (
	"context"

	"github.com/carson-networks/transaction-service/internal/storage"
)

// IAction is a unit of work executed by an Operator inside a single database transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
