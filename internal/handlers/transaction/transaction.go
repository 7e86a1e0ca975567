package transaction

import (
	"time"

	"github.com/carson-networks/transaction-service/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string     `json:"id" format:"uuid" doc:"Transaction UUID"`
	AccountID   string     `json:"account_id" doc:"Account identifier"`
	Amount      float64    `json:"amount" doc:"Transaction amount"`
	Type        string     `json:"type" enum:"deposit,withdrawal,transfer" doc:"Transaction type"`
	Status      string     `json:"status" enum:"pending,completed,failed" doc:"Transaction status"`
	CreatedAt   time.Time  `json:"created_at" doc:"Creation time"`
	ProcessedAt *time.Time `json:"processed_at" nullable:"true" doc:"Time of the last status update, null until the first one"`
}

func transactionFromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		AccountID:   tx.AccountID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
		ProcessedAt: tx.ProcessedAt,
	}
}
