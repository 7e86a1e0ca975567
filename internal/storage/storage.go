package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/transaction-service/internal/config"
	"github.com/carson-networks/transaction-service/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	db           bob.DB
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened connection pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		db:           bobDB,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
	}
}

// Write begins a database transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

// Ping performs a database round trip.
func (s *Storage) Ping(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "SELECT 1")
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
