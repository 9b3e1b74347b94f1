package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/dreambabycare/babycare/database"
	"github.com/dreambabycare/babycare/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath, zerolog.Nop()); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		database.CloseDB()
	})

	return database.GetDB()
}

func newTestUser(email string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: "hash",
		ParentName:   "Asha",
		BabyName:     "Mira",
		BabyDOB:      "2024-03-01",
	}
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Test Create
	user := newTestUser("parent@example.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if user.ID == 0 {
		t.Error("Expected user ID to be set after creation")
	}

	// Duplicate email, different case
	err := repo.Create(ctx, newTestUser("PARENT@example.com"))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}

	if retrieved.Email != user.Email {
		t.Errorf("Expected email %s, got %s", user.Email, retrieved.Email)
	}
	if retrieved.SubscriptionState != models.StateInactive {
		t.Errorf("Expected new user to be inactive, got %+v", retrieved.SubscriptionState)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("Expected created_at to be populated")
	}

	// Test GetByEmail
	byEmail, err := repo.GetByEmail(ctx, "Parent@Example.com")
	if err != nil {
		t.Fatalf("Failed to get user by email: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("Expected user ID %d, got %d", user.ID, byEmail.ID)
	}

	// Test not found
	_, err = repo.GetByID(ctx, user.ID+100)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositorySubscriptionState(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	pending := newTestUser("pending@example.com")
	active := newTestUser("active@example.com")
	inactive := newTestUser("inactive@example.com")
	for _, u := range []*models.User{pending, active, inactive} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
	}

	if err := repo.SetSubscriptionState(ctx, pending.ID, models.StatePending); err != nil {
		t.Fatalf("Failed to set pending state: %v", err)
	}
	if err := repo.SetSubscriptionState(ctx, active.ID, models.StateActive); err != nil {
		t.Fatalf("Failed to set active state: %v", err)
	}

	// Writing the same state again still resolves the row
	if err := repo.SetSubscriptionState(ctx, active.ID, models.StateActive); err != nil {
		t.Fatalf("Failed to rewrite active state: %v", err)
	}

	got, err := repo.GetByID(ctx, active.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.SubscriptionState != models.StateActive {
		t.Errorf("Expected active state, got %+v", got.SubscriptionState)
	}

	pendingUsers, err := repo.GetPending(ctx)
	if err != nil {
		t.Fatalf("Failed to get pending users: %v", err)
	}
	if len(pendingUsers) != 1 || pendingUsers[0].ID != pending.ID {
		t.Errorf("Expected only the pending user, got %+v", pendingUsers)
	}

	subscribed, err := repo.GetSubscribed(ctx)
	if err != nil {
		t.Fatalf("Failed to get subscribed users: %v", err)
	}
	if len(subscribed) != 1 || subscribed[0].ID != active.ID {
		t.Errorf("Expected only the active user, got %+v", subscribed)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all users: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 users, got %d", len(all))
	}

	// Unknown user
	err = repo.SetSubscriptionState(ctx, 9999, models.StateActive)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	for _, path := range []string{"/admin/subscriptions/1/approve", "/admin/actions/undo-last"} {
		entry := &models.AuditLogEntry{
			UserEmail: "admin",
			Method:    "POST",
			Path:      path,
			IPAddress: "127.0.0.1",
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create audit entry: %v", err)
		}
		if entry.ID == 0 {
			t.Error("Expected audit entry ID to be set")
		}
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to read audit entries: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 audit entries, got %d", len(recent))
	}
	if recent[0].Path != "/admin/actions/undo-last" {
		t.Errorf("Expected newest entry first, got %s", recent[0].Path)
	}
}
