package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go-vacancy-backend/pkg/database/migrations"
	"go-vacancy-backend/pkg/logger"

	"github.com/pressly/goose/v3"
)

// Migrate brings the schema up to date using the embedded goose migrations
// for the DB's dialect.
func Migrate(ctx context.Context, db *DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{l: logger.Log.With("component", "goose")})

	dir := "sqlite"
	gooseDialect := "sqlite3"
	if db.Dialect == Postgres {
		dir = "postgres"
		gooseDialect = "postgres"
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type gooseLogger struct {
	l *slog.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Debug(fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
