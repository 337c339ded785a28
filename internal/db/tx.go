package db

import (
	"context"
	"database/sql"
	"fmt"

	"userservice/internal/domain/common"
)

type TxFunc func(ctx context.Context, tx *sql.Tx) error

// WithTx runs fn in a transaction on conn and commits. Begin and commit
// failures are reported as store errors; fn's error is returned as-is after
// rollback.
func WithTx(ctx context.Context, conn *sql.Conn, fn TxFunc) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return common.NewStore("begin", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx rollback: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return common.NewStore("commit", err)
	}
	return nil
}
