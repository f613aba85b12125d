package ports

import (
	"context"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users. Email is unique.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetAll(ctx context.Context) ([]*user.User, error)
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
