package db

import (
	"testing"

	"entgo.io/ent/dialect"
	"github.com/stretchr/testify/assert"
)

func TestUsersDDL_PerDialect(t *testing.T) {
	sqlite := usersDDL(dialect.SQLite)
	assert.Contains(t, sqlite, "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, sqlite, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.Contains(t, sqlite, "name TEXT NOT NULL")
	assert.Contains(t, sqlite, "email TEXT NOT NULL")

	pg := usersDDL(dialect.Postgres)
	assert.Contains(t, pg, "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, pg, "id BIGSERIAL PRIMARY KEY")
	assert.NotContains(t, pg, "AUTOINCREMENT")
}
