package services

import (
	"errors"

	"github.com/felicityfest/fest-api/internal/models"
	"gorm.io/gorm"
)

// ErrUserExists is returned when a signup reuses an existing email.
var ErrUserExists = errors.New("user_already_exists")

type UserService interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

// CreateUser inserts the user and relies on the unique index on email as the
// single uniqueness check. Two concurrent signups with the same email cannot
// both win: the loser's insert fails with a duplicate-key error.
func (s *userService) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
