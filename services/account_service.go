package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreambabycare/babycare/config"
	"github.com/dreambabycare/babycare/models"
	"github.com/dreambabycare/babycare/repositories"
)

var (
	// ErrInvalidCredentials is returned for any failed login
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an existing email
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// ValidationError carries form validation messages
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// AccountService interface defines parent account and admin sign-in logic
type AccountService interface {
	Register(ctx context.Context, form *models.RegisterForm) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	AuthenticateAdmin(username, password string) bool
	IsAdminEmail(email string) bool
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// accountService implements AccountService interface
type accountService struct {
	userRepo repositories.UserRepository
	admin    config.AdminConfig
	logger   zerolog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(userRepo repositories.UserRepository, admin config.AdminConfig, logger zerolog.Logger) AccountService {
	return &accountService{
		userRepo: userRepo,
		admin:    admin,
		logger:   logger.With().Str("service", "account").Logger(),
	}
}

// HashPassword hashes a password with bcrypt's default cost
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

// Register creates an inactive account
func (s *accountService) Register(ctx context.Context, form *models.RegisterForm) (*models.User, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	hash, err := HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:             strings.TrimSpace(form.Email),
		PasswordHash:      hash,
		ParentName:        strings.TrimSpace(form.ParentName),
		BabyName:          strings.TrimSpace(form.BabyName),
		BabyDOB:           form.BabyDOB,
		SubscriptionState: models.StateInactive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Msg("Account registered")
	return user, nil
}

// Authenticate checks an email and password pair
func (s *accountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// AuthenticateAdmin checks the configured back-office credentials
func (s *accountService) AuthenticateAdmin(username, password string) bool {
	if s.admin.PasswordHash == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
}

// IsAdminEmail reports whether a single sign-on email may use the back office
func (s *accountService) IsAdminEmail(email string) bool {
	return s.admin.IsAdminEmail(email)
}

// GetUser retrieves a user by ID
func (s *accountService) GetUser(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
	}
	return user, err
}
