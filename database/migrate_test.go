package database

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrationsOrdered(t *testing.T) {
	migrations, err := loadMigrations(migrationFiles)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
	assert.Equal(t, "001_create_users", migrations[0].Version)
}

func TestInitializeDatabaseIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "babycare.db")

	require.NoError(t, InitializeDatabase(dbPath, zerolog.Nop()))
	t.Cleanup(func() { CloseDB() })

	// Running the migrations a second time must not fail or re-apply them
	require.NoError(t, RunMigrations(GetDB(), zerolog.Nop()))

	applied, err := getAppliedMigrations(GetDB())
	require.NoError(t, err)
	assert.True(t, applied["001_create_users"])
	assert.True(t, applied["002_create_audit_log"])

	var count int
	require.NoError(t, GetDB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestWithConnParams(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"plain path", "babycare.db", "babycare.db?" + connParams},
		{"uri with query", "file:babycare.db?mode=rwc", "file:babycare.db?mode=rwc&" + connParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withConnParams(tt.dsn))
		})
	}
}

func TestInitializeDatabaseWithQueryString(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "babycare.db")

	require.NoError(t, InitializeDatabase("file:"+dbPath+"?mode=rwc", zerolog.Nop()))
	t.Cleanup(func() { CloseDB() })

	var fk int
	require.NoError(t, GetDB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}
