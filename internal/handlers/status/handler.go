package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transaction-service/internal/logging"
)

const Version = "1.0.0"

// HealthBody is the response body for the health check.
type HealthBody struct {
	Status   string `json:"status" example:"healthy" doc:"Service health"`
	Database string `json:"database" example:"connected" doc:"Database connectivity"`
	Version  string `json:"version" example:"1.0.0" doc:"Service version"`
}

// HealthOutput is the Huma output for the health check.
type HealthOutput struct {
	Body HealthBody
}

// pinger performs a database round trip.
type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Database pinger
}

func NewHandler(db pinger) *Handler {
	return &Handler{Database: db}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports whether the service can reach its database.",
		Tags:        []string{"Health Check"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	if err := h.Database.Ping(ctx); err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.Error500InternalServerError("Service unhealthy")
	}

	return &HealthOutput{Body: HealthBody{
		Status:   "healthy",
		Database: "connected",
		Version:  Version,
	}}, nil
}
