package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrInvalidTransition is the classification target for illegal status
// transitions, used with errors.Is. The concrete error names both ends
// of the attempted transition.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports an attempt to move an order between two
// statuses that are not connected in the lifecycle graph.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PROCESSING ──> PAID ──> SHIPPED ──> DELIVERED
//	   │            │              │           │          │            │
//	   └──────> CANCELLED <────────┘           └──────> REFUNDED <─────┘
//
// CANCELLED and REFUNDED are terminal: no outbound transitions exist.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	Pending

	// Confirmed indicates the order has been accepted for processing.
	Confirmed

	// Processing indicates the order is being prepared.
	Processing

	// Paid indicates payment has been captured.
	Paid

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled is a terminal status for orders abandoned before payment.
	Cancelled

	// Refunded is a terminal status for orders reversed after payment.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Paid:       "PAID",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Refunded:   "REFUNDED",
	}
}

// getTransitions returns the directed lifecycle graph: for each source status,
// the set of statuses it may legally move to. Terminal statuses map to an
// empty slice.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no place in the lifecycle graph
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Processing, Cancelled},
		Processing: {Paid, Cancelled},
		Paid:       {Shipped, Refunded},
		Shipped:    {Delivered, Refunded},
		Delivered:  {Refunded},
		Cancelled:  {},
		Refunded:   {},
	}
}

// ParseStatus converts a status name to a typed Status. The match is
// case-insensitive. Unrecognized names fail with a validation error listing
// the accepted values; parsing is total and never yields Unknown silently.
func ParseStatus(s string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status (valid: %s)", s, strings.Join(validStatusNames(), ", ")),
	)
}

func validStatusNames() []string {
	names := make([]string, 0, len(getTransitions()))
	for s := Pending; s <= Refunded; s++ {
		names = append(names, s.String())
	}
	return names
}

// Validate checks if the Status value is one of the enumerated lifecycle states.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the canonical upper-case name of the status.
// Invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outbound transitions.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the lifecycle graph contains an edge from
// s to target. It is a pure query with no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the transition is legal.
// Illegal transitions fail with an InvalidTransitionError naming both ends.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}
