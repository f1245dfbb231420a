package repository

import (
	"context"
	"testing"

	"github.com/benx421/simple-banking/internal/db"
)

const (
	seedCardA = "4000008449433403"
	seedCardB = "4000001234567899"
	seedPIN   = "1234"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database := db.NewTestDB(t)
	seedAccounts(t, database)

	return database
}

func seedAccounts(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		INSERT INTO card (number, pin, balance) VALUES
			(?, ?, 10000),
			(?, ?, 0)
	`, seedCardA, seedPIN, seedCardB, "0042")
	if err != nil {
		t.Fatalf("failed to seed accounts: %v", err)
	}
}
