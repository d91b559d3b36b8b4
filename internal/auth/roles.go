package auth

import (
	"context"
	"errors"

	"gamevault/backend/internal/content"
	"gamevault/backend/internal/models"

	"gorm.io/gorm"
)

// UserRoles resolves roles from the users table.
type UserRoles struct {
	db *gorm.DB
}

func NewUserRoles(db *gorm.DB) *UserRoles {
	return &UserRoles{db: db}
}

func (u *UserRoles) ResolveRole(ctx context.Context, userID string) (string, error) {
	var user models.User
	err := u.db.WithContext(ctx).Select("id", "role").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", content.ErrUnknownUser
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// SetRoleByEmail changes the role of the user with email. It returns
// content.ErrUnknownUser when there is no such user.
func (u *UserRoles) SetRoleByEmail(ctx context.Context, email, role string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, content.ErrUnknownUser
	}
	if err != nil {
		return nil, err
	}
	if err := u.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
