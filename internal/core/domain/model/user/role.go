package user

import (
	"fmt"
	"strings"

	"waypoint/internal/pkg/errs"
)

// Role is the authorization role carried by a user and by its identity token.
type Role string

const (
	Admin   Role = "ADMIN"
	Regular Role = "USER"
)

// ParseRole converts case-insensitive input into a Role.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks that the role is ADMIN or USER.
func (r Role) Validate() error {
	switch r {
	case Admin, Regular:
		return nil
	case "":
		return errs.NewValueIsRequiredError("role")
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
