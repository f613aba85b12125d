package commands

import (
	"strings"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"
)

func requireID(field string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}
