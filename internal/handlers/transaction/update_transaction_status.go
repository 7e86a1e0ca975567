package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transaction-service/internal/handlers"
	"github.com/carson-networks/transaction-service/internal/logging"
	"github.com/carson-networks/transaction-service/internal/service"
)

// UpdateTransactionStatusInput is the Huma input for changing a transaction's status.
type UpdateTransactionStatusInput struct {
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Status string `query:"status" required:"true" enum:"pending,completed,failed" doc:"New status"`
}

// UpdateTransactionStatusOutput is the Huma output for changing a transaction's status.
type UpdateTransactionStatusOutput struct {
	Body Transaction
}

// transactionStatusUpdater is the interface for updating a transaction's status.
type transactionStatusUpdater interface {
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, status service.TransactionStatus) (*service.Transaction, error)
}

// UpdateTransactionStatusHandler handles PUT /transactions/{id}.
type UpdateTransactionStatusHandler struct {
	TransactionService transactionStatusUpdater
}

// NewUpdateTransactionStatusHandler creates a new UpdateTransactionStatusHandler.
func NewUpdateTransactionStatusHandler(svc transactionStatusUpdater) *UpdateTransactionStatusHandler {
	return &UpdateTransactionStatusHandler{TransactionService: svc}
}

// Register registers the update status endpoint with the Huma API.
func (h *UpdateTransactionStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-status",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction status",
		Description: "Sets the status of a transaction and stamps processed_at. Any status may follow any other.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionStatusHandler) handle(ctx context.Context, input *UpdateTransactionStatusInput) (*UpdateTransactionStatusOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid transaction id", err)
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("transactionID", id.String())
		logData.AddData("newStatus", input.Status)
	}

	updated, err := h.TransactionService.UpdateTransactionStatus(ctx, id, service.TransactionStatus(input.Status))
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "Failed to update transaction")
	}

	return &UpdateTransactionStatusOutput{Body: transactionFromService(updated)}, nil
}
