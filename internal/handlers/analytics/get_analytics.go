package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-service/internal/handlers"
	"github.com/carson-networks/transaction-service/internal/logging"
	"github.com/carson-networks/transaction-service/internal/service"
)

// AnalyticsSummary is the API response model for transaction analytics.
type AnalyticsSummary struct {
	TotalTransactions int     `json:"total_transactions" doc:"Number of matching transactions"`
	Completed         int     `json:"completed" doc:"Number of completed transactions"`
	Pending           int     `json:"pending" doc:"Number of pending transactions"`
	Failed            int     `json:"failed" doc:"Number of failed transactions"`
	TotalDeposits     float64 `json:"total_deposits" doc:"Sum of completed deposits"`
	TotalWithdrawals  float64 `json:"total_withdrawals" doc:"Sum of completed withdrawals"`
	NetFlow           float64 `json:"net_flow" doc:"total_deposits minus total_withdrawals"`
}

// GetAnalyticsInput is the Huma input for transaction analytics.
type GetAnalyticsInput struct {
	AccountID string `query:"account_id" maxLength:"36" doc:"Only summarize transactions of this account"`
}

// GetAnalyticsOutput is the Huma output for transaction analytics.
type GetAnalyticsOutput struct {
	Body AnalyticsSummary
}

type analyticsGetter interface {
	GetAnalytics(ctx context.Context, accountID *string) (*service.AnalyticsSummary, error)
}

// Handler handles GET /analytics.
type Handler struct {
	TransactionService analyticsGetter
}

func NewHandler(svc analyticsGetter) *Handler {
	return &Handler{TransactionService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-analytics",
		Method:      http.MethodGet,
		Path:        "/analytics",
		Summary:     "Transaction analytics",
		Description: "Counts transactions by status and sums completed deposits and withdrawals.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	logData := logging.GetLogData(ctx)

	var accountID *string
	if input.AccountID != "" {
		accountID = &input.AccountID
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("analyticsMs")
	}
	summary, err := h.TransactionService.GetAnalytics(ctx, accountID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "Failed to compute analytics")
	}

	if logData != nil {
		logData.AddData("transactionCount", summary.TotalTransactions)
	}

	return &GetAnalyticsOutput{Body: AnalyticsSummary{
		TotalTransactions: summary.TotalTransactions,
		Completed:         summary.Completed,
		Pending:           summary.Pending,
		Failed:            summary.Failed,
		TotalDeposits:     summary.TotalDeposits,
		TotalWithdrawals:  summary.TotalWithdrawals,
		NetFlow:           summary.NetFlow,
	}}, nil
}
