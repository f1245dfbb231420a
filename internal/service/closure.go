package service

import (
	"context"

	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/repository"
)

// ClosureService handles account closure
type ClosureService struct {
	db *db.DB
}

// NewClosureService creates a new ClosureService
func NewClosureService(database *db.DB) *ClosureService {
	return &ClosureService{
		db: database,
	}
}

// Close deletes the account matching both number and PIN
func (s *ClosureService) Close(ctx context.Context, number, pin string) error {
	return s.performClose(ctx, repository.NewAccountRepository(s.db), number, pin)
}

func (s *ClosureService) performClose(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	number, pin string,
) error {
	deleted, err := accountRepo.Delete(ctx, number, pin)
	if err != nil {
		return internalError("failed to close account", err)
	}
	if !deleted {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "no account matches this card number and PIN",
		}
	}

	return nil
}
