package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dreambabycare/babycare/models"
)

// ErrNotFound is returned when a user id or email does not resolve to a record
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when an account with the email already exists
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository interface defines user database operations
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetPending(ctx context.Context) ([]models.User, error)
	GetSubscribed(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	SetSubscriptionState(ctx context.Context, id int, state models.SubscriptionState) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, parent_name, baby_name, baby_dob,
		       is_admin, is_subscribed, subscription_pending, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.ParentName,
		&user.BabyName,
		&user.BabyDOB,
		&user.IsAdmin,
		&user.IsSubscribed,
		&user.SubscriptionPending,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetAll retrieves all users, newest first
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
}

// GetPending retrieves users with an open subscription request
func (r *userRepository) GetPending(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users
		WHERE subscription_pending = 1 AND is_subscribed = 0
		ORDER BY created_at DESC, id DESC`)
}

// GetSubscribed retrieves users with gated-content access
func (r *userRepository) GetSubscribed(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users
		WHERE is_subscribed = 1
		ORDER BY created_at DESC, id DESC`)
}

func (r *userRepository) list(ctx context.Context, query string) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Create inserts a new user and sets its ID
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, parent_name, baby_name, baby_dob,
		                   is_admin, is_subscribed, subscription_pending)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		strings.TrimSpace(user.Email),
		user.PasswordHash,
		user.ParentName,
		user.BabyName,
		user.BabyDOB,
		user.IsAdmin,
		user.IsSubscribed,
		user.SubscriptionPending,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("user %s: %w", user.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted user ID: %w", err)
	}
	user.ID = int(id)

	return nil
}

// SetSubscriptionState writes both subscription flags of a user
func (r *userRepository) SetSubscriptionState(ctx context.Context, id int, state models.SubscriptionState) error {
	query := `UPDATE users SET is_subscribed = ?, subscription_pending = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, state.IsSubscribed, state.SubscriptionPending, id)
	if err != nil {
		return fmt.Errorf("failed to update subscription state: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}

	return nil
}
