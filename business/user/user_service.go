package user

import (
	"context"
	"errors"
	"fmt"

	"backoffice/domain"
	"backoffice/pkg/logger"
	"backoffice/pkg/utils"
)

// UserRepository contract interface
type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type userService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *userService {
	return &userService{
		userRepo: userRepo,
	}
}

// Register creates a back-office account. The password is stored as a
// bcrypt hash only.
func (s *userService) Register(ctx context.Context, username, password string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when registering user")
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	_, err := s.userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		logger.Error("Username already exists", "username", username)
		return domain.User{}, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		logger.Error("Failed to check username", err)
		return domain.User{}, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := domain.User{
		Username: username,
		Password: passwordHash,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	logger.Info("user registered successfully", "user_id", newUser.ID)

	return newUser, nil
}
