package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the SQL backend. Queries are written with '?' placeholders and
// rebound for postgres.
type Store struct {
	db     DBTX
	driver string
}

// NewStore opens the database, applies pending migrations from the
// "migrations/<driver>" directory of migrationsFS and returns a ready Store.
// For sqlite3 the dsn is a file path.
func NewStore(driver, dsn string, migrationsFS fs.FS) (*Store, error) {
	db, err := open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, driver, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &Store{db: db, driver: driver}, nil
}

func open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		if dsn != ":memory:" {
			dbDir := filepath.Dir(dsn)
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
			}
		}
		db, err := sql.Open(DriverSQLite, dsn+"?_foreign_keys=on&_busy_timeout=5000")
		if err != nil {
			return nil, fmt.Errorf("can not open database : %w", err)
		}
		// One connection keeps ":memory:" databases shared and avoids
		// SQLITE_BUSY between concurrent writers.
		db.SetMaxOpenConns(1)
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("can not connect with database : %w", err)
		}
		return db, nil

	case DriverPostgres:
		db, err := sql.Open(DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres connection: %w", err)
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		db.SetMaxIdleConns(20)
		db.SetMaxOpenConns(30)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(15 * time.Minute)
		return db, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func (s *Store) ExecTx(ctx context.Context, fn func(Repository) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return ErrNestedTransaction
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	txStore := &Store{db: tx, driver: s.driver}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func (s *Store) Driver() string {
	return s.driver
}

// rebind rewrites '?' placeholders to '$n' for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func runMigrations(db *sql.DB, driverName string, migrationsFS fs.FS) error {
	var (
		driver database.Driver
		err    error
	)
	switch driverName {
	case DriverSQLite:
		driver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case DriverPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driverName)
	}
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, path.Join("migrations", driverName))
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		driverName,
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}
