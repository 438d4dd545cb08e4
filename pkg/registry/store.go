package registry

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/registry/migrations"
	"github.com/arthur-debert/pcmove/pkg/types"
	_ "modernc.org/sqlite"
)

// Store persists configuration records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the registry at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "registry path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryAccess, "failed to create %s", filepath.Dir(cleanPath))
	}

	sqlDB, err := sql.Open("sqlite", cleanPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryAccess, "open sqlite db")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, errors.ErrRegistryAccess, "ping sqlite db")
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, errors.ErrRegistryAccess, "run migrations")
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateConfiguration inserts a record and returns its id.
func (s *Store) CreateConfiguration(ctx context.Context, code string, loc types.Location) (int, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, errors.New(errors.ErrInvalidInput, "configuration code is required")
	}
	now := time.Now().UTC().UnixMilli()
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO pipeline_configurations (code, linux_path, windows_path, mac_path, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		code, loc.Linux, loc.Windows, loc.Mac, now, now,
	)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrRegistryAccess, "insert configuration")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrRegistryAccess, "read configuration id")
	}
	return int(id), nil
}

// FindConfiguration returns the record with id, or an ErrNotFound error.
func (s *Store) FindConfiguration(ctx context.Context, id int) (types.Record, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, code, linux_path, windows_path, mac_path
		   FROM pipeline_configurations WHERE id = ?`, id)

	var rec types.Record
	err := row.Scan(&rec.ID, &rec.Code, &rec.Location.Linux, &rec.Location.Windows, &rec.Location.Mac)
	if stderrors.Is(err, sql.ErrNoRows) {
		return types.Record{}, errors.Newf(errors.ErrNotFound, "pipeline configuration %d not found in registry", id)
	}
	if err != nil {
		return types.Record{}, errors.Wrapf(err, errors.ErrRegistryAccess, "query configuration %d", id)
	}
	return rec, nil
}

// UpdateConfiguration replaces the three paths of record id.
func (s *Store) UpdateConfiguration(ctx context.Context, id int, loc types.Location) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE pipeline_configurations
		    SET linux_path = ?, windows_path = ?, mac_path = ?, updated_at = ?
		  WHERE id = ?`,
		loc.Linux, loc.Windows, loc.Mac, time.Now().UTC().UnixMilli(), id,
	)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRegistryUpdate, "update configuration %d", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, errors.ErrRegistryUpdate, "update configuration %d", id)
	}
	if n == 0 {
		return errors.Newf(errors.ErrNotFound, "pipeline configuration %d not found in registry", id)
	}
	return nil
}

// ListConfigurations returns every record ordered by id.
func (s *Store) ListConfigurations(ctx context.Context) ([]types.Record, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, code, linux_path, windows_path, mac_path
		   FROM pipeline_configurations ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryAccess, "list configurations")
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var rec types.Record
		if err := rows.Scan(&rec.ID, &rec.Code, &rec.Location.Linux, &rec.Location.Windows, &rec.Location.Mac); err != nil {
			return nil, errors.Wrap(err, errors.ErrRegistryAccess, "scan configuration")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryAccess, "list configurations")
	}
	return records, nil
}
