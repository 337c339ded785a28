package db

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"userservice/internal/config"
	"userservice/internal/domain/common"
	"userservice/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "github.com/mattn/go-sqlite3"    // register sqlite3 as a database/sql driver
)

type Client struct {
	db      *sql.DB
	dialect string
	logger  logging.Logger
}

// NewClient prepares a handle for the configured driver. It does not dial:
// connectivity is checked per request by Acquire, so a missing or locked
// store surfaces as a ConnectivityError instead of failing startup.
func NewClient(cfg config.DBConfig, logger logging.Logger) (*Client, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dbStd, err := sql.Open(cfg.Driver, cfg.DataSource())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// Connections are opened per request and closed on release.
	dbStd.SetMaxIdleConns(0)

	return &Client{
		db:      dbStd,
		dialect: d,
		logger:  logger.With("component", "db_client"),
	}, nil
}

func dialectFor(driver string) (string, error) {
	switch driver {
	case "sqlite3":
		return dialect.SQLite, nil
	case "pgx":
		return dialect.Postgres, nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

// Dialect returns the ent dialect name used to build statements.
func (c *Client) Dialect() string {
	return c.dialect
}

// Builder returns an ent SQL builder bound to the client's dialect.
func (c *Client) Builder() *entsql.DialectBuilder {
	return entsql.Dialect(c.dialect)
}

// Acquire hands out a dedicated connection. The caller must Close it.
func (c *Client) Acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, common.NewConnectivity(err)
	}
	// sqlite opens lazily; make sure the file is actually usable.
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, common.NewConnectivity(err)
	}
	return conn, nil
}

// Close closes the underlying handle.
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping is used by health checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return nil
	})
}
