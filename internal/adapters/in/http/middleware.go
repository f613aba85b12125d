package http

import (
	"fmt"
	"strings"
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/policy"
	pkgjwt "waypoint/internal/pkg/jwt"

	"github.com/labstack/echo/v4"
)

// authenticate parses an optional bearer token. A valid token puts the
// caller identity into the request context; a missing token leaves the
// request anonymous so the policy gate can deny it. A malformed or invalid
// token is rejected outright.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return fmt.Errorf("%w: expected Bearer token", errUnauthenticated)
		}

		claims, err := pkgjwt.Parse(s.auth.Secret, s.auth.Issuer, strings.TrimSpace(token))
		if err != nil {
			return fmt.Errorf("%w: %w", errUnauthenticated, err)
		}

		userID, err := kernel.UUIDFromString(claims.UserID)
		if err != nil {
			return fmt.Errorf("%w: %w", errUnauthenticated, err)
		}

		role, err := user.ParseRole(claims.Role)
		if err != nil {
			return fmt.Errorf("%w: %w", errUnauthenticated, err)
		}

		ctx := policy.WithIdentity(c.Request().Context(), policy.Identity{UserID: userID, Role: role})
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// require gates a route on op. Anonymous callers get 401, authenticated
// callers without a matching role get 403.
func require(op policy.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if _, ok := policy.IdentityFrom(ctx); !ok {
				return errUnauthenticated
			}
			if err := policy.AuthorizeContext(ctx, op); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		event := s.logger.Info()
		if c.Response().Status >= 500 {
			event = s.logger.Warn()
		}
		event.
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.RequestURI()).
			Int("status", c.Response().Status).
			Int64("bytes", c.Response().Size).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
