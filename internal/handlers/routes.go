package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/simple-banking/internal/api"
	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/config"
	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/middleware"
	"github.com/benx421/simple-banking/internal/service"
)

// RegisterRoutes mounts the card and health endpoints on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.GetHealth)
	mux.HandleFunc("POST /api/v1/cards", h.CreateCard)
	mux.HandleFunc("DELETE /api/v1/cards/{cardNumber}", h.CloseCard)
	mux.HandleFunc("GET /api/v1/cards/{cardNumber}/balance", h.GetBalance)
	mux.HandleFunc("POST /api/v1/cards/{cardNumber}/income", h.AddIncome)
	mux.HandleFunc("POST /api/v1/cards/{cardNumber}/transfers", h.CreateTransfer)
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	generator *card.Generator,
	idempotencyRepo middleware.IdempotencyRepository,
	cfg *config.Config,
	logger *slog.Logger,
) (http.Handler, error) {
	accountService := service.NewAccountService(database, generator, cfg.Card.MaxRetries, logger)
	transferService := service.NewTransferService(database)
	closureService := service.NewClosureService(database)

	handler := NewHandler(
		accountService,
		accountService,
		accountService,
		transferService,
		closureService,
		database,
		logger,
	)

	validationRouter, err := api.NewRouter()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux, logger)
	handler.RegisterRoutes(mux)

	var finalHandler http.Handler = mux

	finalHandler = middleware.Validation(validationRouter, logger)(finalHandler)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)
	finalHandler = middleware.RequestID(logger)(finalHandler)

	return finalHandler, nil
}
