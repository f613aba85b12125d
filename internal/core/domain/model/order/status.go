package order

import (
	"strings"

	"waypoint/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The constants below name the states the system itself emits, but Status is
// deliberately open: any non-empty value is accepted and any state may follow
// any other. DELIVERED -> PENDING is a legal change.
type Status string

const (
	// Pending is the usual state of a freshly placed order.
	Pending Status = "PENDING"

	// InTransit indicates the order left its origin.
	InTransit Status = "IN_TRANSIT"

	// Delivered indicates the order reached its destination.
	Delivered Status = "DELIVERED"

	// Cancelled indicates the order will not be delivered.
	Cancelled Status = "CANCELLED"
)

// ParseStatus converts raw input into a Status. Surrounding whitespace is
// trimmed; an empty result fails with a required value error.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the status is present.
func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsKnown reports whether the status is one of the predefined constants.
func (s Status) IsKnown() bool {
	switch s {
	case Pending, InTransit, Delivered, Cancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
