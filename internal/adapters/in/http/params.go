package http

import (
	"strings"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// bind decodes the JSON request body. Decoding failures surface as 400.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
