package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/classbook/internal/db"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migrator applies versioned SQL files and records them in schema_migrations
type Migrator struct {
	db     db.Pool
	files  fs.FS
	dir    string
	logger zerolog.Logger
}

// NewMigrator creates a migrator over the SQL files compiled into the binary
func NewMigrator(pool db.Pool, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     pool,
		files:  embedded,
		dir:    "sql",
		logger: lgr,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Pending lists the versions that have not been applied yet
func (m *Migrator) Pending(ctx context.Context) ([]string, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return nil, err
	}

	files, err := m.sqlFiles()
	if err != nil {
		return nil, err
	}

	// Files are sorted, so pending keeps version order
	pending := []string{}
	for _, file := range files {
		applied, err := m.isMigrationApplied(ctx, versionOf(file))
		if err != nil {
			return nil, err
		}
		if !applied {
			pending = append(pending, file)
		}
	}
	return pending, nil
}

// Migrate applies every pending migration in lexical order
func (m *Migrator) Migrate(ctx context.Context) error {
	pending, err := m.Pending(ctx)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		m.logger.Info().Msg("Database schema is up to date")
		return nil
	}

	for _, file := range pending {
		if err := m.apply(ctx, file); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) apply(ctx context.Context, file string) error {
	content, err := fs.ReadFile(m.files, path.Join(m.dir, file))
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", file, err)
	}

	// The schema change and its tracking row commit together, so a failed file is retried next start
	version := versionOf(file)
	err = db.WithTransaction(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", file, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", file, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info().Str("migration", file).Msg("Migration applied")
	return nil
}

func (m *Migrator) sqlFiles() ([]string, error) {
	entries, err := fs.ReadDir(m.files, m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		// Subdirectories and notes are not migrations
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// versionOf extracts the version prefix, e.g. "001_init.sql" => "001"
func versionOf(file string) string {
	return strings.Split(file, "_")[0]
}
