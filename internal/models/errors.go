package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateCard indicates a card with the same number already exists
	ErrDuplicateCard = errors.New("duplicate card number")

	// ErrBalanceOverflow indicates a credit would push a balance past the
	// largest storable amount
	ErrBalanceOverflow = errors.New("balance overflow")
)
