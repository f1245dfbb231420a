package api

// ErrorCode identifies a failure in an Error response body.
type ErrorCode string

// Defines values for ErrorCode.
const (
	ErrorCodeInvalidRequest     ErrorCode = "invalid_request"
	ErrorCodeInvalidCredentials ErrorCode = "invalid_credentials"
	ErrorCodeInvalidTargetCard  ErrorCode = "invalid_target_card"
	ErrorCodeSameAccount        ErrorCode = "same_account"
	ErrorCodeTargetNotFound     ErrorCode = "target_not_found"
	ErrorCodeInsufficientFunds  ErrorCode = "insufficient_funds"
	ErrorCodeAccountNotFound    ErrorCode = "account_not_found"
	ErrorCodeInvalidAmount      ErrorCode = "invalid_amount"
	ErrorCodeInternalError      ErrorCode = "internal_error"
)

// HealthStatus is the state reported by GET /health.
type HealthStatus string

// Defines values for HealthStatus.
const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// Error is the body of every non-2xx response.
type Error struct {
	Error   ErrorCode `json:"error"`
	Message string    `json:"message"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status HealthStatus `json:"status"`
}

// CreateCardResponse carries the number and PIN of a freshly issued card.
type CreateCardResponse struct {
	CardNumber string `json:"card_number"`
	PIN        string `json:"pin"`
}

// BalanceResponse defines model for BalanceResponse.
type BalanceResponse struct {
	CardNumber string `json:"card_number"`
	Balance    int64  `json:"balance"`
}

// IncomeRequest defines model for IncomeRequest.
type IncomeRequest struct {
	Amount int64 `json:"amount"`
}

// TransferRequest defines model for TransferRequest.
type TransferRequest struct {
	TargetCardNumber string `json:"target_card_number"`
	Amount           int64  `json:"amount"`
}

// TransferResponse reports a completed transfer and the new source balance.
type TransferResponse struct {
	CardNumber       string `json:"card_number"`
	TargetCardNumber string `json:"target_card_number"`
	Amount           int64  `json:"amount"`
	Balance          int64  `json:"balance"`
}
