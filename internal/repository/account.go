// Package repository provides data access layer implementations for the ledger.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/models"
)

// DBTX is satisfied by both *db.DB and *db.Tx so repositories can run inside
// or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*db.DB)(nil)
	_ DBTX = (*db.Tx)(nil)
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, number, pin string) (*models.Account, error)
	Authenticate(ctx context.Context, number, pin string) (bool, error)
	Exists(ctx context.Context, number string) (bool, error)
	FindByNumber(ctx context.Context, number string) (*models.Account, error)
	Deposit(ctx context.Context, number string, amount int64) error
	Debit(ctx context.Context, number string, amount int64) (bool, error)
	Delete(ctx context.Context, number, pin string) (bool, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database DBTX) AccountRepository {
	return &accountRepository{db: database}
}

// Create inserts a new card with a zero balance
func (r *accountRepository) Create(ctx context.Context, number, pin string) (*models.Account, error) {
	query := `INSERT INTO card (number, pin) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, number, pin); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("card %s: %w", number, models.ErrDuplicateCard)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return r.FindByNumber(ctx, number)
}

// Authenticate reports whether a card with exactly this number and PIN exists
func (r *accountRepository) Authenticate(ctx context.Context, number, pin string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM card WHERE number = ? AND pin = ?)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, number, pin).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to authenticate card: %w", err)
	}

	return ok, nil
}

// Exists reports whether any card has this number, regardless of PIN
func (r *accountRepository) Exists(ctx context.Context, number string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM card WHERE number = ?)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, number).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check card existence: %w", err)
	}

	return ok, nil
}

// FindByNumber retrieves an account by its card number
func (r *accountRepository) FindByNumber(ctx context.Context, number string) (*models.Account, error) {
	query := `
		SELECT id, number, pin, balance
		FROM card
		WHERE number = ?
	`

	var account models.Account
	err := r.db.QueryRowContext(ctx, query, number).Scan(
		&account.ID,
		&account.Number,
		&account.PIN,
		&account.Balance,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", number, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by number: %w", err)
	}

	return &account, nil
}

// Deposit atomically adds amount to the balance. The row is left untouched,
// and models.ErrBalanceOverflow returned, when the sum would not fit in an
// int64.
func (r *accountRepository) Deposit(ctx context.Context, number string, amount int64) error {
	query := `UPDATE card SET balance = balance + ? WHERE number = ? AND balance <= ?`

	ceiling := int64(math.MaxInt64)
	if amount > 0 {
		ceiling -= amount
	}

	result, err := r.db.ExecContext(ctx, query, amount, number, ceiling)
	if err != nil {
		return fmt.Errorf("failed to deposit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	exists, err := r.Exists(ctx, number)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("account %s: %w", number, models.ErrBalanceOverflow)
	}
	return fmt.Errorf("account %s: %w", number, models.ErrNotFound)
}

// Debit subtracts amount only if the balance covers it. It returns false,
// leaving the row untouched, when funds are insufficient or the card is
// missing.
func (r *accountRepository) Debit(ctx context.Context, number string, amount int64) (bool, error) {
	query := `UPDATE card SET balance = balance - ? WHERE number = ? AND balance >= ?`

	result, err := r.db.ExecContext(ctx, query, amount, number, amount)
	if err != nil {
		return false, fmt.Errorf("failed to debit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// Delete removes the card matching both number and PIN. Nothing is deleted,
// and no error returned, when the pair does not match.
func (r *accountRepository) Delete(ctx context.Context, number, pin string) (bool, error) {
	query := `DELETE FROM card WHERE number = ? AND pin = ?`

	result, err := r.db.ExecContext(ctx, query, number, pin)
	if err != nil {
		return false, fmt.Errorf("failed to delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
