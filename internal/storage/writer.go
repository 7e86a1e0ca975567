package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/transaction-service/internal/storage/sqlconfig"
)

// Writer groups the tables bound to a single open transaction.
type Writer struct {
	tx          bob.Tx
	Transaction sqlconfig.ITransactionTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: sqlconfig.NewTransactionsTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit()
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback()
}
