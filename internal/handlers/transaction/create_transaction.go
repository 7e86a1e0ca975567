package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-service/internal/handlers"
	"github.com/carson-networks/transaction-service/internal/logging"
	"github.com/carson-networks/transaction-service/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID string  `json:"account_id" minLength:"1" maxLength:"36" doc:"Account identifier"`
	Amount    float64 `json:"amount" doc:"Transaction amount"`
	Type      string  `json:"type" enum:"deposit,withdrawal,transfer" doc:"Transaction type"`
	Status    string  `json:"status,omitempty" enum:"pending,completed,failed" doc:"Ignored, new transactions are always pending"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, input service.CreateTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		Summary:       "Create transaction",
		Description:   "Records a new transaction with status pending.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) service.CreateTransaction {
	create := service.CreateTransaction{
		AccountID: input.Body.AccountID,
		Amount:    input.Body.Amount,
		Type:      service.TransactionType(input.Body.Type),
	}
	if input.Body.Status != "" {
		status := service.TransactionStatus(input.Body.Status)
		create.Status = &status
	}
	return create
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.CreateTransaction(ctx, parseCreateTransactionInput(input))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "Failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromService(created),
	}, nil
}
