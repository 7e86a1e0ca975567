package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-service/internal/handlers"
	"github.com/carson-networks/transaction-service/internal/logging"
	"github.com/carson-networks/transaction-service/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	AccountID string `query:"account_id" maxLength:"36" doc:"Only return transactions of this account"`
	Limit     int    `query:"limit" minimum:"1" maximum:"100" default:"10" doc:"Page size"`
	Offset    int    `query:"offset" minimum:"0" default:"0" doc:"Number of transactions to skip"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter service.ListTransactionsFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns transactions ordered by creation time, most recent first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput converts query parameters into a service filter.
// An empty account_id means no account filter.
func parseListTransactionsInput(input *ListTransactionsInput) service.ListTransactionsFilter {
	filter := service.ListTransactionsFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.AccountID != "" {
		accountID := input.AccountID
		filter.AccountID = &accountID
	}
	return filter
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, parseListTransactionsInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "Failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make([]Transaction, len(transactions))
	for i := range transactions {
		resp[i] = transactionFromService(&transactions[i])
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
