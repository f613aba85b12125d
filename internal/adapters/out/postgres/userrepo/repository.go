package userrepo

import (
	"context"
	"errors"
	"strings"

	"waypoint/internal/adapters/out/postgres/pgerrs"
	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/pkg/errs"

	"gorm.io/gorm"
)

const kind = "user"

// GormUserRepository implements ports.UserRepository. The unique index on
// email surfaces as *errs.ObjectAlreadyExistsError from Add and Update.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	return pgerrs.Unique(r.db.WithContext(ctx).Create(&dto).Error, "email", dto.Email)
}

func (r *GormUserRepository) Update(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).
		Select("email", "username").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Unique(result.Error, "email", dto.Email)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(kind, u.ID().String())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail matches case-insensitively; stored emails are already lowercase.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind, email)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

func (r *GormUserRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
