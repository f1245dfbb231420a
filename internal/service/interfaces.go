package service

import (
	"context"

	"github.com/benx421/simple-banking/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Issuer opens new accounts with a freshly generated card number and PIN
type Issuer interface {
	Issue(ctx context.Context) (*models.Account, error)
}

// Authenticator checks a card number and PIN pair
type Authenticator interface {
	Authenticate(ctx context.Context, number, pin string) error
}

// Teller handles balance inquiries and deposits
type Teller interface {
	Balance(ctx context.Context, number string) (int64, error)
	Deposit(ctx context.Context, number string, amount int64) error
}

// Transferrer moves funds between accounts
type Transferrer interface {
	CheckTarget(ctx context.Context, from, to string) error
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// Closer closes accounts
type Closer interface {
	Close(ctx context.Context, number, pin string) error
}

// Ensure concrete types implement interfaces
var (
	_ Issuer        = (*AccountService)(nil)
	_ Authenticator = (*AccountService)(nil)
	_ Teller        = (*AccountService)(nil)
	_ Transferrer   = (*TransferService)(nil)
	_ Closer        = (*ClosureService)(nil)
)
