package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/repository/postgres/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return result.Error
	}

	u.ID = userModel.ID
	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (m *userRepository) Update(ctx context.Context, id int64, patch domain.UserUpdate) (domain.User, error) {
	fields := map[string]interface{}{}
	if patch.Username != nil {
		fields["username"] = *patch.Username
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Password != nil {
		fields["password"] = *patch.Password
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}
	if patch.Image != nil {
		fields["image"] = *patch.Image
	}

	if len(fields) > 0 {
		result := m.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return domain.User{}, domain.ErrConflict
			}
			return domain.User{}, result.Error
		}
		if result.RowsAffected == 0 {
			return domain.User{}, domain.ErrNotFound
		}
	}

	return m.GetByID(ctx, id)
}
