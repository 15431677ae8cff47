package kernel

import (
	"fmt"
	"regexp"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// NewMoney or NewMoneyFromFloat. The zero value of Money is invalid.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or NewMoneyFromFloat",
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Money is an immutable value object representing a non-negative monetary amount
// in a single currency. Arithmetic between two Money values requires their
// currencies to match exactly; a mismatch is a domain error and is never
// silently coerced.
//
// Amounts are held as exact decimals so that repeated addition of prices never
// accumulates binary floating point drift.
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(10.00, "USD")
//	if err != nil {
//	    // handle validation error
//	}
//	total, err := price.Multiply(3) // 30.00 USD
type Money struct {
	amount        decimal.Decimal
	currency      string
	isConstructed bool
}

// NewMoney creates a Money value from an exact decimal amount and a 3-letter
// uppercase currency code. The amount must not be negative.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	if !currencyPattern.MatchString(currency) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a 3-letter code (e.g. USD, EUR)", currency),
		)
	}

	return Money{
		amount:        amount,
		currency:      currency,
		isConstructed: true,
	}, nil
}

// NewMoneyFromFloat creates a Money value from a floating point amount.
// Used at the boundary where request payloads carry numeric amounts.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two Money values of the same currency.
// Fails if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply returns the amount multiplied by a non-negative integer factor.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))), m.currency)
}

// Divide returns the amount divided by a positive integer divisor.
func (m Money) Divide(divisor int) (Money, error) {
	if divisor <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"divisor",
			fmt.Errorf("%d is not greater than 0", divisor),
		)
	}
	return NewMoney(m.amount.Div(decimal.NewFromInt(int64(divisor))), m.currency)
}

// IsGreaterThan reports whether m exceeds other. Currencies must match.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// IsLessThan reports whether m is below other. Currencies must match.
func (m Money) IsLessThan(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.LessThan(other.amount), nil
}

// Equals reports whether two Money values have the same amount and currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the amount with two decimal places followed by the currency,
// for example "10.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

func (m Money) ensureSameCurrency(other Money) error {
	if m.currency != other.currency {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("cannot operate on different currencies: %s and %s", m.currency, other.currency),
		)
	}
	return nil
}
