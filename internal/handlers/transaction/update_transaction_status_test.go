package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transaction-service/internal/service"
)

func newUpdateStatusTestAPI(t *testing.T, svc transactionStatusUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateTransactionStatusHandler(svc).Register(api)
	return api
}

func TestHTTP_UpdateTransactionStatus_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	processedAt := time.Date(2025, 7, 1, 13, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransactionStatus", mock.Anything, id, service.TransactionStatusCompleted).
		Return(&service.Transaction{
			ID:          id,
			AccountID:   "acct-1",
			Amount:      100,
			Type:        service.TransactionTypeDeposit,
			Status:      service.TransactionStatusCompleted,
			CreatedAt:   time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
			ProcessedAt: &processedAt,
		}, nil)

	resp := newUpdateStatusTestAPI(t, mockSvc).Put("/transactions/" + id.String() + "?status=completed")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "completed", body.Status)
	require.NotNil(t, body.ProcessedAt)
	assert.True(t, processedAt.Equal(*body.ProcessedAt))
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransactionStatus_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransactionStatus", mock.Anything, id, service.TransactionStatusFailed).
		Return(nil, fmt.Errorf("%w: %s", service.ErrNotFound, id))

	resp := newUpdateStatusTestAPI(t, mockSvc).Put("/transactions/" + id.String() + "?status=failed")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransactionStatus_InvalidRequest(t *testing.T) {
	id := uuid.Must(uuid.NewV4()).String()
	for name, path := range map[string]string{
		"missing status": "/transactions/" + id,
		"unknown status": "/transactions/" + id + "?status=settled",
		"invalid id":     "/transactions/not-a-uuid?status=completed",
	} {
		t.Run(name, func(t *testing.T) {
			mockSvc := new(mockTransactionService)

			resp := newUpdateStatusTestAPI(t, mockSvc).Put(path)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			mockSvc.AssertNotCalled(t, "UpdateTransactionStatus")
		})
	}
}

func TestHTTP_UpdateTransactionStatus_ServiceError(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransactionStatus", mock.Anything, id, service.TransactionStatusPending).
		Return(nil, fmt.Errorf("%w: %w", service.ErrStorageFailure, errors.New("deadlock detected")))

	resp := newUpdateStatusTestAPI(t, mockSvc).Put("/transactions/" + id.String() + "?status=pending")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "deadlock")
}
