// Package card generates and validates card numbers and PINs.
package card

import (
	"fmt"
	"strings"
)

const (
	// NumberLength is the length of an issued card number
	NumberLength = 16
	// IINLength is the length of the issuer identification number prefix
	IINLength = 6
	// PINLength is the length of a card PIN
	PINLength = 4

	bodyLength = NumberLength - 1
)

// Checksum computes the check digit for a 15-digit card number body.
//
// Digits at odd 1-based positions are doubled, with 9 subtracted when the
// result exceeds 9. The check digit is the complement of the sum mod 10,
// which makes the full 16-digit number pass the standard Luhn check.
func Checksum(body string) (byte, error) {
	if len(body) != bodyLength {
		return 0, fmt.Errorf("card number body must be %d digits, got %d", bodyLength, len(body))
	}
	if !IsDigits(body) {
		return 0, fmt.Errorf("card number body must contain digits only")
	}

	sum := 0
	for i := 0; i < len(body); i++ {
		digit := int(body[i] - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return '0' + byte((10-sum%10)%10), nil
}

// IsValid reports whether number is a 16-digit card number whose last digit
// matches the checksum of the first 15.
func IsValid(number string) bool {
	if len(number) != NumberLength {
		return false
	}
	cd, err := Checksum(number[:bodyLength])
	if err != nil {
		return false
	}
	return number[bodyLength] == cd
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Mask keeps the IIN and the last four digits and hides the rest.
func Mask(number string) string {
	n := len(number)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < IINLength+4 {
		return strings.Repeat("*", n-4) + number[n-4:]
	}
	return number[:IINLength] + strings.Repeat("*", n-IINLength-4) + number[n-4:]
}
