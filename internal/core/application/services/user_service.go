package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/pkg/errs"
	"waypoint/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown email or a
// wrong password; the two cases are not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService registers and authenticates users and maintains their profiles.
// Roles are fixed at registration.
type UserService struct {
	uowFactory UserUoWFactory
	log        *logger.Logger
	now        func() time.Time
	cost       int
}

func NewUserService(uowFactory UserUoWFactory, log *logger.Logger) *UserService {
	return &UserService{
		uowFactory: uowFactory,
		log:        log.Named("user-service"),
		now:        time.Now,
		cost:       bcrypt.DefaultCost,
	}
}

// Register hashes the password with bcrypt and stores the user. A taken email
// surfaces as an already exists error from the store.
func (s *UserService) Register(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), s.cost)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.Username(), string(hash), cmd.Role(), s.now())
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Info().Str("userId", u.ID().String()).Str("role", u.Role().String()).Msg("user registered")
	return u, nil
}

// Authenticate checks an email and password pair.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.uowFactory.Create().UserRepository().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *UserService) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	return s.uowFactory.Create().UserRepository().Get(ctx, id)
}

func (s *UserService) ListAll(ctx context.Context) ([]*user.User, error) {
	return s.uowFactory.Create().UserRepository().GetAll(ctx)
}

// UpdateProfile replaces email and username.
func (s *UserService) UpdateProfile(ctx context.Context, cmd commands.UpdateProfileCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = u.ChangeProfile(cmd.Email(), cmd.Username()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	s.log.Debug().Str("userId", u.ID().String()).Msg("profile updated")
	return u, nil
}
