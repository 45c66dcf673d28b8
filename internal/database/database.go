package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 2 * time.Second

type Database struct {
	db  pool
	dsn string
}

type DBExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// pool is the part of *pgxpool.Pool the storage uses.
type pool interface {
	DBExecutor
	Ping(ctx context.Context) error
	Close()
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

func New(ctx context.Context, dsn string) (*Database, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	d := &Database{db: db, dsn: dsn}

	if err := d.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

// Ping checks that the database answers within pingTimeout.
func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := d.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func (d *Database) RunMigrations() error {
	driver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrations, err := migrate.NewWithSourceInstance("iofs", driver, d.dsn)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err := migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Info("no new migrations")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Log.Info("migrations applied")

	return nil
}

func (d *Database) Close() {
	if d.db != nil {
		d.db.Close()
	}
}
