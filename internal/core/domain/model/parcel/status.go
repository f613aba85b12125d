package parcel

import (
	"strings"

	"waypoint/internal/pkg/errs"
)

// Status is the package lifecycle state. Like order.Status it is an open set:
// the constants are conventional values, not a closed enumeration.
type Status string

const (
	Pending   Status = "PENDING"
	InTransit Status = "IN_TRANSIT"
	Delivered Status = "DELIVERED"
	Lost      Status = "LOST"
)

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func (s Status) IsKnown() bool {
	switch s {
	case Pending, InTransit, Delivered, Lost:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
