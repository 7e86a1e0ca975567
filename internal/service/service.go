package service

import (
	"github.com/carson-networks/transaction-service/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service. Reads go to store directly; writes are
// executed by processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
	}
}
