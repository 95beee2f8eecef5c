package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxBankNameLength = 100
	MaxAmount         = "1000000000" // 1 billion per transaction
)

// Normalized account numbers are digits plus a single trailing check digit
// separated by a hyphen, e.g. "12345-6".
var accountNumberRegex = regexp.MustCompile(`^\d{1,10}-\d$`)

// ValidateBankName validates a bank name.
func ValidateBankName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidBankName)
	}

	if len(name) > MaxBankNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidBankName, MaxBankNameLength)
	}

	return nil
}

// NormalizeAccountNumber reduces an account number to digits and inserts the
// check-digit hyphen before the last digit. Already-normalized input is
// returned unchanged.
func NormalizeAccountNumber(number string) string {
	if strings.Contains(number, "-") {
		return number
	}

	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) <= 1 {
		return s
	}

	return s[:len(s)-1] + "-" + s[len(s)-1:]
}

// ValidateAccountNumber validates a normalized account number.
func ValidateAccountNumber(number string) error {
	if !accountNumberRegex.MatchString(number) {
		return fmt.Errorf("%w: %q is not in digits-checkdigit form", ErrInvalidAccountNumber, number)
	}

	return nil
}

// ValidateAmount validates a transaction amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxAmount)
	}

	return nil
}

// ValidateReason validates an adjustment reason.
func ValidateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrMissingReason
	}

	return nil
}
