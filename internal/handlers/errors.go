package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-service/internal/logging"
	"github.com/carson-networks/transaction-service/internal/service"
)

// ServiceError maps a service error onto an HTTP error. Storage failures are
// recorded on the request's LogData and answered with the generic message.
func ServiceError(ctx context.Context, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound("Transaction not found")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}
	return huma.Error500InternalServerError(message)
}
