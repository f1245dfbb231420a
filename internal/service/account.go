package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/models"
	"github.com/benx421/simple-banking/internal/repository"
)

// AccountService handles issuance, login, balance and deposit operations
type AccountService struct {
	db         *db.DB
	generator  *card.Generator
	logger     *slog.Logger
	maxRetries int
}

// NewAccountService creates a new AccountService
func NewAccountService(
	database *db.DB,
	generator *card.Generator,
	maxRetries int,
	logger *slog.Logger,
) *AccountService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &AccountService{
		db:         database,
		generator:  generator,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Issue creates an account with a new card number and PIN
func (s *AccountService) Issue(ctx context.Context) (*models.Account, error) {
	return s.performIssue(ctx, repository.NewAccountRepository(s.db))
}

// performIssue generates numbers until one inserts without colliding
func (s *AccountService) performIssue(ctx context.Context, accountRepo repository.AccountRepository) (*models.Account, error) {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		number := s.generator.Number()
		pin := s.generator.PIN()

		account, err := accountRepo.Create(ctx, number, pin)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, models.ErrDuplicateCard) {
			return nil, internalError("failed to create account", err)
		}

		s.logger.Warn("generated card number already issued, retrying",
			"card", card.Mask(number),
			"attempt", attempt,
		)
	}

	return nil, internalError(
		fmt.Sprintf("could not issue a unique card number after %d attempts", s.maxRetries),
		nil,
	)
}

// Authenticate succeeds only when an account with exactly this number and
// PIN exists
func (s *AccountService) Authenticate(ctx context.Context, number, pin string) error {
	return s.performAuthenticate(ctx, repository.NewAccountRepository(s.db), number, pin)
}

func (s *AccountService) performAuthenticate(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	number, pin string,
) error {
	invalid := &ServiceError{
		Code:    ErrCodeInvalidCredentials,
		Message: "wrong card number or PIN",
	}

	if ValidateCardNumber(number) != nil || ValidatePIN(pin) != nil {
		return invalid
	}

	ok, err := accountRepo.Authenticate(ctx, number, pin)
	if err != nil {
		return internalError("failed to authenticate", err)
	}
	if !ok {
		return invalid
	}

	return nil
}

// Balance returns the current balance of an account
func (s *AccountService) Balance(ctx context.Context, number string) (int64, error) {
	account, err := repository.NewAccountRepository(s.db).FindByNumber(ctx, number)
	if err != nil {
		return 0, mapLookupError(err)
	}

	return account.Balance, nil
}

// Deposit adds a positive amount to an account
func (s *AccountService) Deposit(ctx context.Context, number string, amount int64) error {
	if err := ValidateAmount(amount); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	if err := repository.NewAccountRepository(s.db).Deposit(ctx, number, amount); err != nil {
		return mapLookupError(err)
	}

	return nil
}

func mapLookupError(err error) error {
	if errors.Is(err, models.ErrBalanceOverflow) {
		return balanceOverflow(err)
	}
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
			Err:     err,
		}
	}
	return internalError("failed to access account", err)
}

func balanceOverflow(err error) error {
	return &ServiceError{
		Code:    ErrCodeInvalidAmount,
		Message: "amount would exceed the largest balance an account can hold",
		Err:     err,
	}
}
