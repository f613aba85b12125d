package user

import (
	"errors"
	"strings"
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a registered account. It holds only the password hash; hashing
// happens in the application layer.
type User struct {
	id           kernel.UUID
	email        string
	username     string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a User. createdAt is normalized to UTC.
func NewUser(id kernel.UUID, email, username, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	u.createdAt = createdAt.UTC()

	return u, nil
}

// RestoreUser rebuilds a User from persisted state.
func RestoreUser(id kernel.UUID, email, username, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	return NewUser(id, email, username, passwordHash, role, createdAt)
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// ChangeProfile replaces email and username. Role and password are untouched.
// On failure the user is left unchanged.
func (u *User) ChangeProfile(email, username string) error {
	next := *u
	if err := errors.Join(next.setEmail(email), next.setUsername(username)); err != nil {
		return err
	}
	*u = next
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
