package commands

import (
	"errors"
	"fmt"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/pkg/errs"
	"waypoint/internal/pkg/guard"
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8

	// MaxPasswordBytes is the longest password bcrypt can hash.
	MaxPasswordBytes = 72
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
)

// RegisterUserCommand carries the plain-text password; it is hashed by the user service.
type RegisterUserCommand struct {
	email    string
	username string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(email, username, password string, role user.Role) (RegisterUserCommand, error) {
	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	} else if len(password) < MinPasswordLength {
		passwordErr = errs.NewValueIsInvalidErrorWithCause(
			"password", fmt.Errorf("must be at least %d characters", MinPasswordLength))
	} else if len(password) > MaxPasswordBytes {
		passwordErr = errs.NewValueIsInvalidErrorWithCause(
			"password", fmt.Errorf("must be at most %d bytes", MaxPasswordBytes))
	}

	if err := errors.Join(
		requireText("email", email),
		requireText("username", username),
		passwordErr,
		role.Validate(),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		email:    email,
		username: username,
		password: password,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string    { return c.email }
func (c RegisterUserCommand) Username() string { return c.username }
func (c RegisterUserCommand) Password() string { return c.password }
func (c RegisterUserCommand) Role() user.Role  { return c.role }

// UpdateProfileCommand replaces email and username. Role and password are not
// part of a profile.
type UpdateProfileCommand struct {
	userID   kernel.UUID
	email    string
	username string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(userID kernel.UUID, email, username string) (UpdateProfileCommand, error) {
	if err := errors.Join(
		requireID("userId", userID),
		requireText("email", email),
		requireText("username", username),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return UpdateProfileCommand{
		userID:   userID,
		email:    email,
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateProfileCommand) Email() string       { return c.email }
func (c UpdateProfileCommand) Username() string    { return c.username }
