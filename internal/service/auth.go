package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"englearn/internal/domain"
	"englearn/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials is returned when username or password is wrong
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when the username is already registered
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
)

// AuthService handles registration, login and account updates
type AuthService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		logger: logger,
	}
}

// HashPassword returns the hex-encoded sha256 digest of a password
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register validates and creates a new account, returning its id
func (s *AuthService) Register(username, email, password string) (int, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(username) < 3 {
		return 0, fmt.Errorf("username must be at least 3 characters")
	}
	if !strings.Contains(email, "@") {
		return 0, fmt.Errorf("invalid email address")
	}
	if len(password) < 6 {
		return 0, fmt.Errorf("password must be at least 6 characters")
	}

	if err := s.checkAvailable(username, email); err != nil {
		return 0, err
	}

	id, err := s.users.CreateUser(username, email, HashPassword(password))
	if err != nil {
		// Lost a registration race; the name or email is taken now.
		if errors.Is(err, repository.ErrConstraint) {
			return 0, ErrUsernameTaken
		}
		s.logger.Error("Failed to create user", zap.String("username", username), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func (s *AuthService) checkAvailable(username, email string) error {
	if _, err := s.users.GetUserByUsername(username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := s.users.GetUserByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return nil
}

// Login verifies credentials and issues a fresh login token
func (s *AuthService) Login(username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.PasswordHash != HashPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.users.UpdateToken(user.ID, token); err != nil {
		return nil, err
	}
	user.Token = token

	return user, nil
}

// Logout invalidates the user's login token
func (s *AuthService) Logout(userID int) error {
	return s.users.ClearToken(userID)
}

// UserByToken resolves a login token to its account
func (s *AuthService) UserByToken(token string) (*domain.User, error) {
	if token == "" {
		return nil, repository.ErrNotFound
	}
	return s.users.GetUserByToken(token)
}

// UserByID returns an account by id
func (s *AuthService) UserByID(id int) (*domain.User, error) {
	return s.users.GetUserByID(id)
}

// UpdateProfile updates email and avatar; empty values are left unchanged
func (s *AuthService) UpdateProfile(userID int, email, avatar string) error {
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}
	return s.users.UpdateProfile(userID, email, avatar)
}

// ChangePassword verifies the old password and stores a new one
func (s *AuthService) ChangePassword(userID int, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("new password must be at least 6 characters")
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return err
	}

	if user.PasswordHash != HashPassword(oldPassword) {
		return ErrInvalidCredentials
	}

	return s.users.UpdatePassword(userID, HashPassword(newPassword))
}
