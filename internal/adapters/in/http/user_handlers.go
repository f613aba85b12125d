package http

import (
	"net/http"
	"strings"
	"time"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/core/domain/policy"
	pkgjwt "waypoint/internal/pkg/jwt"

	"github.com/labstack/echo/v4"
)

// register creates an account and signs the caller in. Accounts default to
// USER; an ADMIN account may only be requested by an authenticated admin.
func (s *Server) register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	role := user.Regular
	if strings.TrimSpace(req.Role) != "" {
		parsed, err := user.ParseRole(req.Role)
		if err != nil {
			return err
		}
		role = parsed
	}

	if role == user.Admin {
		if err := policy.AuthorizeContext(c.Request().Context(), policy.UserRegisterAdmin); err != nil {
			return err
		}
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Username, req.Password, role)
	if err != nil {
		return err
	}

	created, err := s.services.Users.Register(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.issueToken(c, http.StatusCreated, created)
}

func (s *Server) login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	u, err := s.services.Users.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return s.issueToken(c, http.StatusOK, u)
}

func (s *Server) issueToken(c echo.Context, status int, u *user.User) error {
	expiresAt := time.Now().Add(s.auth.TokenTTL).UTC()
	token, err := pkgjwt.Generate(s.auth.Secret, u.ID().String(), u.Role().String(), s.auth.Issuer, s.auth.TokenTTL)
	if err != nil {
		return err
	}
	return c.JSON(status, TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(u),
	})
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.services.Users.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(users, toUserResponse))
}

func (s *Server) getUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	u, err := s.services.Users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

func (s *Server) updateProfile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(id, req.Email, req.Username)
	if err != nil {
		return err
	}

	updated, err := s.services.Users.UpdateProfile(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}
