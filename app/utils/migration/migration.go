package migration

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Migration is a single versioned schema change loaded from the
// migrations filesystem. Files are named NNNN_name.up.sql with a
// matching NNNN_name.down.sql.
type Migration struct {
	Version   int
	Name      string
	UpSQL     string
	DownSQL   string
	AppliedAt time.Time
}

type Migrator struct {
	db           *sql.DB
	logger       *slog.Logger
	migrationsFS fs.FS
}

// NewMigrator creates a new migration manager
func NewMigrator(db *sql.DB, logger *slog.Logger, migrationsFS fs.FS) *Migrator {
	return &Migrator{
		db:           db,
		logger:       logger.With("component", "migrator"),
		migrationsFS: migrationsFS,
	}
}

// EnsureVersionTable creates the migrations tracking table if missing
func (m *Migrator) EnsureVersionTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		checksum VARCHAR(64) NOT NULL
	)`

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	return nil
}

// Load reads all migration pairs from the filesystem, sorted by version
func (m *Migrator) Load() ([]Migration, error) {
	migrations := make([]Migration, 0)

	err := fs.WalkDir(m.migrationsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".up.sql") {
			return nil
		}

		filename := filepath.Base(path)
		parts := strings.Split(filename, "_")
		if len(parts) < 2 {
			m.logger.Warn("Invalid migration filename format", "filename", filename)
			return nil
		}

		version, err := strconv.Atoi(parts[0])
		if err != nil {
			m.logger.Warn("Invalid migration version", "filename", filename, "error", err)
			return nil
		}

		upContent, err := fs.ReadFile(m.migrationsFS, path)
		if err != nil {
			return fmt.Errorf("failed to read up migration %s: %w", path, err)
		}

		downPath := strings.Replace(path, ".up.sql", ".down.sql", 1)
		downContent, err := fs.ReadFile(m.migrationsFS, downPath)
		if err != nil {
			return fmt.Errorf("failed to read down migration %s: %w", downPath, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.Join(parts[1:], "_"),
			UpSQL:   string(upContent),
			DownSQL: string(downContent),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// Applied returns the migrations recorded in the version table
func (m *Migrator) Applied() ([]Migration, error) {
	rows, err := m.db.Query(`SELECT version, name, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	var migrations []Migration
	for rows.Next() {
		var migration Migration
		if err := rows.Scan(&migration.Version, &migration.Name, &migration.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		migrations = append(migrations, migration)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating migration rows: %w", err)
	}

	return migrations, nil
}

// Up applies all pending migrations in version order
func (m *Migrator) Up() error {
	if err := m.EnsureVersionTable(); err != nil {
		return err
	}

	all, err := m.Load()
	if err != nil {
		return err
	}

	applied, err := m.Applied()
	if err != nil {
		return err
	}

	appliedMap := make(map[int]bool, len(applied))
	for _, migration := range applied {
		appliedMap[migration.Version] = true
	}

	for _, migration := range all {
		if appliedMap[migration.Version] {
			continue
		}

		if err := m.apply(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
		}

		m.logger.Info("Applied migration",
			"version", migration.Version,
			"name", migration.Name)
	}

	return nil
}

// Down rolls back the most recently applied migration
func (m *Migrator) Down() error {
	applied, err := m.Applied()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		m.logger.Info("No migrations to roll back")
		return nil
	}

	last := applied[len(applied)-1]

	all, err := m.Load()
	if err != nil {
		return err
	}

	var target *Migration
	for i := range all {
		if all[i].Version == last.Version {
			target = &all[i]
			break
		}
	}

	if target == nil {
		return fmt.Errorf("migration %d not found in filesystem", last.Version)
	}

	if err := m.rollback(*target); err != nil {
		return fmt.Errorf("failed to rollback migration %d: %w", target.Version, err)
	}

	m.logger.Info("Rolled back migration",
		"version", target.Version,
		"name", target.Name)

	return nil
}

// Status logs the applied/pending state of every known migration
func (m *Migrator) Status() error {
	all, err := m.Load()
	if err != nil {
		return err
	}

	applied, err := m.Applied()
	if err != nil {
		return err
	}

	appliedMap := make(map[int]time.Time, len(applied))
	for _, migration := range applied {
		appliedMap[migration.Version] = migration.AppliedAt
	}

	for _, migration := range all {
		if appliedAt, ok := appliedMap[migration.Version]; ok {
			m.logger.Info("Migration applied",
				"version", migration.Version,
				"name", migration.Name,
				"applied_at", appliedAt.Format(time.RFC3339))
		} else {
			m.logger.Info("Migration pending",
				"version", migration.Version,
				"name", migration.Name)
		}
	}

	return nil
}

func (m *Migrator) apply(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.UpSQL); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	insertQuery := `INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(insertQuery, migration.Version, migration.Name, checksum(migration.UpSQL)); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	return nil
}

func (m *Migrator) rollback(migration Migration) error {
	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.DownSQL); err != nil {
		return fmt.Errorf("failed to execute rollback: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, migration.Version); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rollback: %w", err)
	}

	return nil
}

func checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
