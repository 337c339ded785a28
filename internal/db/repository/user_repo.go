package repository

import (
	"context"
	"database/sql"
	"errors"

	"entgo.io/ent/dialect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"userservice/internal/db"
	"userservice/internal/domain/common"
	dom "userservice/internal/domain/user"
	"userservice/internal/logging"
)

var tracer = otel.Tracer("userservice/internal/db/repository")

type UserRepository struct {
	client *db.Client
	logger logging.Logger
}

func NewUserRepository(client *db.Client, logger logging.Logger) dom.Repository {
	return &UserRepository{
		client: client,
		logger: logger.With("component", "user_repo"),
	}
}

func (r *UserRepository) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "users."+op, trace.WithAttributes(
		attribute.String("db.system", r.client.Dialect()),
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", db.UsersTable),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, dom.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *UserRepository) Create(ctx context.Context, u *dom.User) (err error) {
	ctx, span := r.startSpan(ctx, "insert")
	defer func() { endSpan(span, err) }()

	query, args := insertUser(r.client.Builder(), r.client.Dialect(), u)

	return r.client.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return db.WithTx(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			if r.client.Dialect() == dialect.Postgres {
				if err := tx.QueryRowContext(ctx, query, args...).Scan(&u.ID); err != nil {
					return common.NewStore("insert", err)
				}
				return nil
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return common.NewStore("insert", err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return common.NewStore("insert", err)
			}
			u.ID = id
			return nil
		})
	})
}

func (r *UserRepository) List(ctx context.Context) (users []dom.User, err error) {
	ctx, span := r.startSpan(ctx, "select")
	defer func() { endSpan(span, err) }()

	query, args := selectUsers(r.client.Builder())

	users = make([]dom.User, 0)
	err = r.client.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return common.NewStore("select", err)
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			var u dom.User
			if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
				return common.NewStore("select", err)
			}
			users = append(users, u)
		}
		if err := rows.Err(); err != nil {
			return common.NewStore("select", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("db.rows", len(users)))
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (u *dom.User, err error) {
	ctx, span := r.startSpan(ctx, "select")
	defer func() { endSpan(span, err) }()

	query, args := selectUser(r.client.Builder(), id)

	var found dom.User
	err = r.client.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, args...).Scan(&found.ID, &found.Name, &found.Email)
		if errors.Is(err, sql.ErrNoRows) {
			return dom.ErrNotFound
		}
		if err != nil {
			return common.NewStore("select", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// Update writes name and email for u.ID. A missing row is not an error.
func (r *UserRepository) Update(ctx context.Context, u *dom.User) (err error) {
	ctx, span := r.startSpan(ctx, "update")
	defer func() { endSpan(span, err) }()

	query, args := updateUser(r.client.Builder(), u)

	return r.exec(ctx, span, "update", query, args)
}

// Delete removes the row for id. A missing row is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := r.startSpan(ctx, "delete")
	defer func() { endSpan(span, err) }()

	query, args := deleteUser(r.client.Builder(), id)

	return r.exec(ctx, span, "delete", query, args)
}

func (r *UserRepository) exec(ctx context.Context, span trace.Span, op, query string, args []any) error {
	return r.client.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return db.WithTx(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return common.NewStore(op, err)
			}
			if n, err := res.RowsAffected(); err == nil {
				span.SetAttributes(attribute.Int64("db.rows_affected", n))
				if n == 0 {
					r.logger.Debug("no row matched", "op", op)
				}
			}
			return nil
		})
	})
}
