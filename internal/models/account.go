package models

// Account is a card-holding account in the ledger
type Account struct {
	Number  string `db:"number"`
	PIN     string `db:"pin"`
	ID      int64  `db:"id"`
	Balance int64  `db:"balance"`
}
