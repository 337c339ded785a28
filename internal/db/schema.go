package db

import (
	"context"
	"database/sql"

	"entgo.io/ent/dialect"

	"userservice/internal/logging"
)

const UsersTable = "users"

const (
	sqliteUsersDDL = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL
	);
	`

	postgresUsersDDL = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL
	);
	`
)

// usersDDL returns the idempotent DDL for the users table.
func usersDDL(d string) string {
	if d == dialect.Postgres {
		return postgresUsersDDL
	}
	return sqliteUsersDDL
}

// EnsureSchema creates the users table if it is absent. Failures are logged
// and swallowed: the service keeps running and every request will then fail
// at the connection or statement step.
func EnsureSchema(ctx context.Context, c *Client, logger logging.Logger) {
	logger = logger.With("component", "schema")

	conn, err := c.Acquire(ctx)
	if err != nil {
		logger.Error("failed to connect to the database", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ddl := usersDDL(c.Dialect())
	err = WithTx(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, ddl)
		return err
	})
	if err != nil {
		logger.Error("database error", "error", err)
		return
	}

	logger.Info("schema ready", "table", UsersTable)
}
