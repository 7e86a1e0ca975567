package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	psql.Quote("id"),
	psql.Quote("account_id"),
	psql.Quote("amount"),
	psql.Quote("type"),
	psql.Quote("status"),
	psql.Quote("created_at"),
	psql.Quote("processed_at"),
}

var transactionMapper = scan.StructMapper[Transaction]()

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to an executor, either the pooled
// database or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, transactionMapper)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row, including the
// database-assigned created_at.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into(transactionsTableName, "id", "account_id", "amount", "type", "status"),
		im.Values(psql.Arg(create.ID, create.AccountID, create.Amount, string(create.Type), string(create.Status))),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, transactionMapper)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns transactions matching the filter, most recent first. Nil filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	if filter != nil {
		if filter.AccountID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), transactionMapper)
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// UpdateStatus overwrites status and processed_at and returns the updated row.
func (t *TransactionsTable) UpdateStatus(ctx context.Context, id uuid.UUID, status TransactionStatus, processedAt time.Time) (*Transaction, error) {
	query := psql.Update(
		um.Table(transactionsTableName),
		um.SetCol("status").ToArg(string(status)),
		um.SetCol("processed_at").ToArg(processedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, transactionMapper)
	if err != nil {
		return nil, err
	}
	return &row, nil
}
