package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/models"
	"github.com/benx421/simple-banking/internal/repository"
)

// TransferService handles transfers between accounts
type TransferService struct {
	db *db.DB
}

// NewTransferService creates a new TransferService
func NewTransferService(database *db.DB) *TransferService {
	return &TransferService{
		db: database,
	}
}

// CheckTarget rejects self-transfers, numbers failing the checksum and
// cards that do not exist. The checks run in that order.
func (s *TransferService) CheckTarget(ctx context.Context, from, to string) error {
	return checkTarget(ctx, repository.NewAccountRepository(s.db), from, to)
}

// Transfer moves amount from one account to another in a single database
// transaction. On any failure neither balance changes.
func (s *TransferService) Transfer(ctx context.Context, from, to string, amount int64) error {
	if err := ValidateAmount(amount); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return internalError("failed to start transaction", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txAccountRepo := repository.NewAccountRepository(tx)

	if err := s.performTransfer(ctx, txAccountRepo, from, to, amount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction", err)
	}

	return nil
}

// performTransfer contains the core transfer business logic
func (s *TransferService) performTransfer(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	from, to string,
	amount int64,
) error {
	if err := checkTarget(ctx, accountRepo, from, to); err != nil {
		return err
	}

	source, err := accountRepo.FindByNumber(ctx, from)
	if err != nil {
		return mapLookupError(err)
	}

	insufficient := &ServiceError{
		Code:    ErrCodeInsufficientFunds,
		Message: "not enough money",
	}

	if amount > source.Balance {
		return insufficient
	}

	// the balance may have moved since it was read
	debited, err := accountRepo.Debit(ctx, from, amount)
	if err != nil {
		return internalError("failed to debit source account", err)
	}
	if !debited {
		return insufficient
	}

	if err := accountRepo.Deposit(ctx, to, amount); err != nil {
		if errors.Is(err, models.ErrBalanceOverflow) {
			return balanceOverflow(err)
		}
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{
				Code:    ErrCodeTargetNotFound,
				Message: "such a card does not exist",
				Err:     err,
			}
		}
		return internalError("failed to credit target account", err)
	}

	return nil
}

func checkTarget(ctx context.Context, accountRepo repository.AccountRepository, from, to string) error {
	if from == to {
		return &ServiceError{
			Code:    ErrCodeSameAccount,
			Message: "you can't transfer money to the same account",
		}
	}

	if !card.IsValid(to) {
		return &ServiceError{
			Code:    ErrCodeInvalidTargetCard,
			Message: "probably you made a mistake in the card number",
		}
	}

	exists, err := accountRepo.Exists(ctx, to)
	if err != nil {
		return internalError(fmt.Sprintf("failed to look up card %s", card.Mask(to)), err)
	}
	if !exists {
		return &ServiceError{
			Code:    ErrCodeTargetNotFound,
			Message: "such a card does not exist",
		}
	}

	return nil
}
