package util

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail verifies the address has a plausible user@host.tld shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateAmount verifies the amount is positive and below the cap.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(decimal.New(1, 7)) { // cap at 10 million
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateDate verifies the date is formatted YYYY-MM-DD.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateType verifies the transaction type is income or expense.
func ValidateType(txType string) error {
	if txType != "income" && txType != "expense" {
		return fmt.Errorf("type must be income or expense, got %q", txType)
	}
	return nil
}
