package service

import (
	"clubhub/repository"
	"context"

	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
	}
}

// GetUserById backs the current-user lookup; the id comes from the caller's token.
func (s *UserService) GetUserById(ctx context.Context, userId int) (*repository.User, error) {
	user, err := s.userRepository.GetUserById(ctx, userId)
	if err != nil {
		return nil, notFoundOrStorage(err, "user", userId)
	}
	return user, nil
}

func (s *UserService) SaveUser(ctx context.Context, user *repository.User) (*repository.User, error) {
	saved, err := s.userRepository.SaveUser(ctx, user)
	if err != nil {
		return nil, notFoundOrStorage(err, "user", user.Id)
	}
	return saved, nil
}
