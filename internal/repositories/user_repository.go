package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/zrohdes/ai-survey-platform/internal/models/db_models"
	"github.com/zrohdes/ai-survey-platform/internal/models/domain_models"
	"github.com/zrohdes/ai-survey-platform/pkg/utils"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) CreateUser(ctx context.Context, email string) (*domain_models.User, error) {
	row := db_models.User{Email: email}
	if err := u.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, utils.NewValidationError("email already registered")
		}
		return nil, err
	}
	return toUser(row), nil
}

func (u *userRepository) GetUser(ctx context.Context, id int64) (*domain_models.User, error) {
	var row db_models.User
	err := u.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toUser(row), nil
}

func (u *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain_models.User, error) {
	var row db_models.User
	err := u.db.WithContext(ctx).Order("id ASC").First(&row, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toUser(row), nil
}

func toUser(row db_models.User) *domain_models.User {
	return &domain_models.User{ID: row.ID, Email: row.Email, CreatedAt: row.CreatedAt}
}

// isDuplicateKey covers drivers that do not translate their constraint errors.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
