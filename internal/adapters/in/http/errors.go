package http

import (
	"errors"
	"fmt"
	"net/http"

	"waypoint/internal/core/application/services"
	"waypoint/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errUnauthenticated = errors.New("authentication required")

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Kind    string   `json:"kind,omitempty"`
	ID      string   `json:"id,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// errorHandler is installed as echo's HTTPErrorHandler.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := s.classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("request failed")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		s.logger.Warn().Err(writeErr).Msg("write error response")
	}
}

func (s *Server) classify(err error) (int, ErrorResponse) {
	var (
		notFound *errs.ObjectNotFoundError
		exists   *errs.ObjectAlreadyExistsError
		httpErr  *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{
			Code:    "NOT_FOUND",
			Message: notFound.Kind() + " not found",
			Kind:    notFound.Kind(),
			ID:      fmt.Sprint(notFound.ID),
		}
	case errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, ErrorResponse{
			Code:    "MISSING_REQUIRED_FIELD",
			Message: err.Error(),
			Fields:  fieldNames(err),
		}
	case errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_VALUE",
			Message: err.Error(),
			Fields:  fieldNames(err),
		}
	case errors.As(err, &exists):
		return http.StatusConflict, ErrorResponse{
			Code:    "ALREADY_EXISTS",
			Message: exists.ParamName + " already in use",
			Fields:  []string{exists.ParamName},
		}
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, ErrorResponse{Code: "ACCESS_DENIED", Message: err.Error()}
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHENTICATED", Message: err.Error()}
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Code: "INVALID_CREDENTIALS", Message: err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, ErrorResponse{Code: http.StatusText(httpErr.Code), Message: fmt.Sprint(httpErr.Message)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL", Message: "internal server error"}
	}
}

// fieldNames collects the parameter names of every validation error in the
// error tree, in order and without duplicates.
func fieldNames(err error) []string {
	var names []string
	seen := map[string]bool{}

	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}

		var name string
		switch v := e.(type) {
		case *errs.ValueIsRequiredError:
			name = v.ParamName
		case *errs.ValueIsInvalidError:
			name = v.ParamName
		}
		if name != "" {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			return
		}

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)

	return names
}
