package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/internal/repositories"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type UserServiceInterface interface {
	CreateUser(ctx context.Context, email string) (*domain_models.User, error)
	GetUser(ctx context.Context, id int64) (*domain_models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser does not check whether the email is already taken; the memory store
// accepts duplicates and the SQL store rejects them through its unique index.
func (u *UserService) CreateUser(ctx context.Context, email string) (*domain_models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, utils.NewValidationError("email is required")
	}

	user, err := u.userRepo.CreateUser(ctx, email)
	if err != nil {
		return nil, err
	}

	u.logger.Info("user created", zap.Int64("user_id", user.ID))
	return user, nil
}

func (u *UserService) GetUser(ctx context.Context, id int64) (*domain_models.User, error) {
	user, err := u.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("user")
	}
	return user, nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (*domain_models.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("user")
	}
	return user, nil
}
