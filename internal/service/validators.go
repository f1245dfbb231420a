package service

import (
	"fmt"

	"github.com/benx421/simple-banking/internal/card"
)

// ValidateCardNumber checks length, digits and checksum of a card number
func ValidateCardNumber(number string) error {
	if len(number) != card.NumberLength {
		return fmt.Errorf("invalid card number length: must be %d digits", card.NumberLength)
	}
	if !card.IsDigits(number) {
		return fmt.Errorf("invalid card number: must contain only digits")
	}
	if !card.IsValid(number) {
		return fmt.Errorf("invalid card number: failed Luhn check")
	}

	return nil
}

// ValidatePIN checks if PIN format is valid.
func ValidatePIN(pin string) error {
	if len(pin) != card.PINLength {
		return fmt.Errorf("invalid PIN: must be %d digits", card.PINLength)
	}
	if !card.IsDigits(pin) {
		return fmt.Errorf("invalid PIN: must contain only digits")
	}

	return nil
}

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}
