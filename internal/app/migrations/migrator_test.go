package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	usersSQL   = "CREATE TABLE users (id BIGSERIAL PRIMARY KEY);"
	catalogSQL = "CREATE TABLE classes (id BIGSERIAL PRIMARY KEY);"

	appliedSQL = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	recordSQL  = `INSERT INTO schema_migrations (version) VALUES ($1)`
)

func newTestMigrator(t *testing.T) (*Migrator, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	files := fstest.MapFS{
		"sql/002_catalog.sql":        {Data: []byte(catalogSQL)},
		"sql/001_users.sql":          {Data: []byte(usersSQL)},
		"sql/README.md":              {Data: []byte("notes")},
		"sql/archive/000_legacy.sql": {Data: []byte("SELECT 1;")},
	}

	return &Migrator{db: mock, files: files, dir: "sql", logger: zerolog.Nop()}, mock
}

func expectTrackingTable(mock pgxmock.PgxPoolIface) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
}

func expectApplied(mock pgxmock.PgxPoolIface, version string, applied bool) {
	mock.ExpectQuery(regexp.QuoteMeta(appliedSQL)).
		WithArgs(version).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(applied))
}

func TestPending(t *testing.T) {
	tests := []struct {
		name    string
		applied map[string]bool
		want    []string
	}{
		{"fresh database", map[string]bool{"001": false, "002": false}, []string{"001_users.sql", "002_catalog.sql"}},
		{"first applied", map[string]bool{"001": true, "002": false}, []string{"002_catalog.sql"}},
		{"up to date", map[string]bool{"001": true, "002": true}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mock := newTestMigrator(t)
			expectTrackingTable(mock)
			expectApplied(mock, "001", tt.applied["001"])
			expectApplied(mock, "002", tt.applied["002"])

			pending, err := m.Pending(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, pending)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPending_TrackingTableFailure(t *testing.T) {
	m, mock := newTestMigrator(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnError(errors.New("permission denied for schema public"))

	_, err := m.Pending(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create migration tracking table")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	t.Run("applies and records each file in its own transaction", func(t *testing.T) {
		m, mock := newTestMigrator(t)
		expectTrackingTable(mock)
		expectApplied(mock, "001", true)
		expectApplied(mock, "002", false)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(catalogSQL)).
			WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
		mock.ExpectExec(regexp.QuoteMeta(recordSQL)).
			WithArgs("002").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		require.NoError(t, m.Migrate(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing pending opens no transaction", func(t *testing.T) {
		m, mock := newTestMigrator(t)
		expectTrackingTable(mock)
		expectApplied(mock, "001", true)
		expectApplied(mock, "002", true)

		require.NoError(t, m.Migrate(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed file rolls back and stops", func(t *testing.T) {
		m, mock := newTestMigrator(t)
		expectTrackingTable(mock)
		expectApplied(mock, "001", false)
		expectApplied(mock, "002", false)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(usersSQL)).
			WillReturnError(errors.New(`relation "users" already exists`))
		mock.ExpectRollback()

		err := m.Migrate(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "001_users.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmbeddedFiles(t *testing.T) {
	files, err := NewMigrator(nil, zerolog.Nop()).sqlFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_users.sql", "002_catalog.sql", "003_carts_payments.sql"}, files)
}

func TestVersionOf(t *testing.T) {
	tests := map[string]string{
		"001_users.sql":          "001",
		"003_carts_payments.sql": "003",
	}

	for file, want := range tests {
		assert.Equal(t, want, versionOf(file), file)
	}
}
