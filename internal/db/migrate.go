package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/spellcore/internal/db/migrations"
)

// RunMigrations runs goose migrations on the given DSN.
// driver is "postgres" or "sqlite".
func RunMigrations(ctx context.Context, driver, dsn string) error {
	sqlDriver, dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	sqlDB, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	return migrate(ctx, sqlDB, dialect)
}

func migrate(ctx context.Context, sqlDB *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// gooseDialect maps a configured driver to the database/sql driver name and goose dialect.
func gooseDialect(driver string) (sqlDriver, dialect string, err error) {
	switch driver {
	case DriverPostgres:
		return "pgx", "postgres", nil
	case DriverSQLite:
		return "sqlite", "sqlite3", nil
	}
	return "", "", fmt.Errorf("driver %q: %w", driver, ErrUnsupportedDriver)
}
