package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transaction-service/internal/handlers/analytics"
	"github.com/carson-networks/transaction-service/internal/handlers/status"
	"github.com/carson-networks/transaction-service/internal/handlers/transaction"
	"github.com/carson-networks/transaction-service/internal/logging"
	"github.com/carson-networks/transaction-service/internal/service"
	"github.com/carson-networks/transaction-service/internal/storage"
)

const shutdownTimeout = 5 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// Handler builds the HTTP handler serving every operation plus the OpenAPI
// document at /openapi.json and docs at /docs.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("Transaction Service", status.Version)
	config.Info.Description = "Records transactions, updates their status and reports analytics."
	config.Tags = []*huma.Tag{
		{Name: "Health Check"},
		{Name: "Transactions"},
		{Name: "Analytics"},
	}

	api := humago.New(mux, config)
	api.UseMiddleware(logging.LoggingMiddleware(r.Logger))

	status.NewHandler(r.Storage).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionStatusHandler(r.Service.Transaction).Register(api)
	analytics.NewHandler(r.Service.Transaction).Register(api)

	return cors.AllowAll().Handler(mux)
}

// Serve listens until ctx is done, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
