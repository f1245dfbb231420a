package handlers

import (
	"net/http"

	"github.com/benx421/simple-banking/internal/api"
	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/middleware"
)

// CreateCard handles POST /api/v1/cards
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	account, err := h.issuer.Issue(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "card issuance", err)
		return
	}

	h.logger.Info("card issued",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"card", card.Mask(account.Number),
	)

	h.writeJSON(w, r, http.StatusCreated, api.CreateCardResponse{
		CardNumber: account.Number,
		PIN:        account.PIN,
	})
}

// GetBalance handles GET /api/v1/cards/{cardNumber}/balance
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	cardNumber, _, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	balance, err := h.teller.Balance(r.Context(), cardNumber)
	if err != nil {
		h.handleServiceError(w, r, "balance inquiry", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, api.BalanceResponse{
		CardNumber: cardNumber,
		Balance:    balance,
	})
}

// AddIncome handles POST /api/v1/cards/{cardNumber}/income
func (h *Handler) AddIncome(w http.ResponseWriter, r *http.Request) {
	cardNumber, _, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var body api.IncomeRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, api.ErrorCodeInvalidRequest, err.Error())
		return
	}

	if err := h.teller.Deposit(r.Context(), cardNumber, body.Amount); err != nil {
		h.handleServiceError(w, r, "deposit", err)
		return
	}

	balance, err := h.teller.Balance(r.Context(), cardNumber)
	if err != nil {
		h.handleServiceError(w, r, "balance inquiry", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, api.BalanceResponse{
		CardNumber: cardNumber,
		Balance:    balance,
	})
}

// CreateTransfer handles POST /api/v1/cards/{cardNumber}/transfers
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	cardNumber, _, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var body api.TransferRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, api.ErrorCodeInvalidRequest, err.Error())
		return
	}

	if err := h.transferrer.Transfer(r.Context(), cardNumber, body.TargetCardNumber, body.Amount); err != nil {
		h.handleServiceError(w, r, "transfer", err)
		return
	}

	h.logger.Info("transfer completed",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"from", card.Mask(cardNumber),
		"to", card.Mask(body.TargetCardNumber),
		"amount", body.Amount,
	)

	balance, err := h.teller.Balance(r.Context(), cardNumber)
	if err != nil {
		h.handleServiceError(w, r, "balance inquiry", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, api.TransferResponse{
		CardNumber:       cardNumber,
		TargetCardNumber: body.TargetCardNumber,
		Amount:           body.Amount,
		Balance:          balance,
	})
}

// CloseCard handles DELETE /api/v1/cards/{cardNumber}
func (h *Handler) CloseCard(w http.ResponseWriter, r *http.Request) {
	cardNumber, pin, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	if err := h.closer.Close(r.Context(), cardNumber, pin); err != nil {
		h.handleServiceError(w, r, "account closure", err)
		return
	}

	h.logger.Info("account closed",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"card", card.Mask(cardNumber),
	)

	w.WriteHeader(http.StatusNoContent)
}
