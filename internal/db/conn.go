package db

import (
	"context"
	"database/sql"
)

type ConnFunc func(ctx context.Context, conn *sql.Conn) error

// WithConn acquires a connection, runs fn and releases the connection on
// every exit path, including panics.
func (c *Client) WithConn(ctx context.Context, fn ConnFunc) error {
	conn, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			c.logger.Error("failed to release connection", "error", cerr)
		}
	}()

	return fn(ctx, conn)
}
