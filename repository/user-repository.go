package repository

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Permission = string

const (
	PermissionAdmin     Permission = "admin"
	PermissionExecutive Permission = "executive"
)

type User struct {
	Id          int            `gorm:"primaryKey autoIncrement"`
	DisplayName string         `gorm:"not null"`
	Email       string         `gorm:"null"`
	Permissions pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

func (u *User) HasAnyPermission(permissions ...Permission) bool {
	for _, required := range permissions {
		for _, granted := range u.Permissions {
			if required == granted {
				return true
			}
		}
	}
	return false
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(ctx context.Context, userId int) (*User, error) {
	var user User
	result := r.DB.WithContext(ctx).First(&user, userId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user *User) (*User, error) {
	result := r.DB.WithContext(ctx).Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}
