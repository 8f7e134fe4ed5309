package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/platewise/mealplan-engine/migrations"
)

// Migrate applies all pending goose migrations from the embedded filesystem.
func Migrate(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied)
	return nil
}
