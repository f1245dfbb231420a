// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"

	"github.com/benx421/simple-banking/internal/service"
)

// Handler serves the card endpoints on top of the service layer
type Handler struct {
	issuer        service.Issuer
	authenticator service.Authenticator
	teller        service.Teller
	transferrer   service.Transferrer
	closer        service.Closer
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	issuer service.Issuer,
	authenticator service.Authenticator,
	teller service.Teller,
	transferrer service.Transferrer,
	closer service.Closer,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		issuer:        issuer,
		authenticator: authenticator,
		teller:        teller,
		transferrer:   transferrer,
		closer:        closer,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
