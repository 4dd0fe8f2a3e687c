package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/configs"
	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/repository"
	"github.com/dgamboa/foodtrucks-backend/utils"
)

var (
	ErrUsernameTaken = errors.New("username taken")

	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// paths so status codes cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles register/login/password-change business logic.
type AuthService struct {
	users      *repository.UserRepository
	jwtSecret  string
	jwtTTL     time.Duration
	bcryptCost int
}

func NewAuthService(users *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  cfg.JWTSecret,
		jwtTTL:     cfg.JWTTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a user with a unique username and issues a token for it.
func (s *AuthService) Register(username, email, password string) (*entity.User, string, error) {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and issues a token. Only a missing user or
// a failed password compare count as bad credentials; unexpected storage
// errors propagate unchanged.
func (s *AuthService) Login(username, password string) (*entity.User, string, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ChangePassword re-verifies the old password before storing the new hash.
func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, string(hashed))
}
