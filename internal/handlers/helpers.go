package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/benx421/simple-banking/internal/api"
	"github.com/benx421/simple-banking/internal/middleware"
	"github.com/benx421/simple-banking/internal/service"
	"github.com/oapi-codegen/runtime"
)

const basicAuthRealm = `Basic realm="simple-banking", charset="UTF-8"`

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeInvalidCredentials:
		return api.ErrorCodeInvalidCredentials
	case service.ErrCodeInvalidTargetCard:
		return api.ErrorCodeInvalidTargetCard
	case service.ErrCodeSameAccount:
		return api.ErrorCodeSameAccount
	case service.ErrCodeTargetNotFound:
		return api.ErrorCodeTargetNotFound
	case service.ErrCodeInsufficientFunds:
		return api.ErrorCodeInsufficientFunds
	case service.ErrCodeAccountNotFound:
		return api.ErrorCodeAccountNotFound
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	default:
		return api.ErrorCodeInternalError
	}
}

func statusForCode(code api.ErrorCode) int {
	switch code {
	case api.ErrorCodeInvalidCredentials:
		return http.StatusUnauthorized
	case api.ErrorCodeInsufficientFunds:
		return http.StatusPaymentRequired
	case api.ErrorCodeAccountNotFound, api.ErrorCodeTargetNotFound:
		return http.StatusNotFound
	case api.ErrorCodeInvalidRequest, api.ErrorCodeInvalidTargetCard,
		api.ErrorCodeSameAccount, api.ErrorCodeInvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, code api.ErrorCode, message string) {
	if code == api.ErrorCodeInvalidCredentials {
		w.Header().Set("WWW-Authenticate", basicAuthRealm)
	}
	h.writeJSON(w, r, statusForCode(code), api.Error{
		Error:   code,
		Message: message,
	})
}

// handleServiceError renders err as an api.Error. Anything that is not a
// business error is logged and hidden behind internal_error.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("unexpected error during "+operation,
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		h.writeError(w, r, api.ErrorCodeInternalError, "internal error")
		return
	}

	h.writeError(w, r, mapServiceErrorToCode(svcErr.Code), svcErr.Message)
}

func bindCardNumber(r *http.Request) (string, error) {
	var cardNumber string
	err := runtime.BindStyledParameterWithOptions("simple", "cardNumber", r.PathValue("cardNumber"), &cardNumber,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter cardNumber: %w", err)
	}
	return cardNumber, nil
}

// authenticate checks the Basic credentials against the card in the path
// and returns the card number and PIN. On failure the response has already
// been written.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	cardNumber, err := bindCardNumber(r)
	if err != nil {
		h.writeError(w, r, api.ErrorCodeInvalidRequest, err.Error())
		return "", "", false
	}

	user, pin, ok := r.BasicAuth()
	if !ok {
		h.writeError(w, r, api.ErrorCodeInvalidCredentials, "card credentials required")
		return "", "", false
	}
	if user != cardNumber {
		h.writeError(w, r, api.ErrorCodeInvalidCredentials, "credentials do not match the card")
		return "", "", false
	}

	if err := h.authenticator.Authenticate(r.Context(), cardNumber, pin); err != nil {
		h.handleServiceError(w, r, "authentication", err)
		return "", "", false
	}

	return cardNumber, pin, true
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
