package repository

import (
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"

	dom "userservice/internal/domain/user"
)

func TestStatements_Postgres(t *testing.T) {
	b := entsql.Dialect(dialect.Postgres)
	u := &dom.User{ID: 7, Name: "Ada", Email: "ada@example.com"}

	query, args := insertUser(b, dialect.Postgres, u)
	assert.Contains(t, query, `INSERT INTO "users"`)
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")
	assert.Contains(t, query, `RETURNING "id"`)
	assert.NotContains(t, query, "?")
	assert.Equal(t, []any{"Ada", "ada@example.com"}, args)

	query, args = selectUsers(b)
	assert.Contains(t, query, `FROM "users"`)
	assert.Contains(t, query, "ORDER BY")
	assert.Empty(t, args)

	query, args = selectUser(b, 7)
	assert.Contains(t, query, `"id" = $1`)
	assert.Equal(t, []any{int64(7)}, args)

	query, args = updateUser(b, u)
	assert.Contains(t, query, `UPDATE "users" SET`)
	assert.Contains(t, query, `"id" = $3`)
	assert.Equal(t, []any{"Ada", "ada@example.com", int64(7)}, args)

	query, args = deleteUser(b, 7)
	assert.Contains(t, query, `DELETE FROM "users"`)
	assert.Contains(t, query, `"id" = $1`)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestStatements_SQLite(t *testing.T) {
	b := entsql.Dialect(dialect.SQLite)
	u := &dom.User{ID: 3, Name: "n", Email: "e"}

	query, args := insertUser(b, dialect.SQLite, u)
	assert.NotContains(t, query, "RETURNING")
	assert.NotContains(t, query, "$1")
	assert.Contains(t, query, "?")
	assert.Equal(t, []any{"n", "e"}, args)

	query, args = updateUser(b, u)
	assert.NotContains(t, query, "$")
	assert.Equal(t, []any{"n", "e", int64(3)}, args)

	query, _ = deleteUser(b, 3)
	assert.Contains(t, query, "?")
}
