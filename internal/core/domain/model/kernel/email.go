package kernel

import (
	"fmt"
	"regexp"

	"ordering/internal/pkg/errs"
)

// ErrEmailIsNotConstructed indicates that an Email was not created via NewEmail.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")

const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable value object holding a validated email address.
// Validation is deliberately simple: one @ separating non-empty local and
// domain parts, a dot in the domain, and an overall length limit of 254
// characters.
type Email struct {
	value         string
	isConstructed bool
}

// NewEmail creates an Email after validating the address format.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if len(value) > maxEmailLength {
		return Email{}, errs.NewValueIsOutOfRangeError("email length", len(value), 1, maxEmailLength)
	}
	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid email address", value),
		)
	}

	return Email{
		value:         value,
		isConstructed: true,
	}, nil
}

// Validate checks that the Email was properly constructed.
func (e Email) Validate() error {
	if !e.isConstructed {
		return ErrEmailIsNotConstructed
	}
	return nil
}

// String returns the email address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two email addresses for exact equality.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}
