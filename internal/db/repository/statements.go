package repository

import (
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"userservice/internal/db"
	dom "userservice/internal/domain/user"
)

var userColumns = []string{"id", "name", "email"}

// insertUser asks Postgres for the new id with RETURNING; sqlite callers
// read it from LastInsertId instead.
func insertUser(b *entsql.DialectBuilder, d string, u *dom.User) (string, []any) {
	insert := b.Insert(db.UsersTable).
		Columns("name", "email").
		Values(u.Name, u.Email)
	if d == dialect.Postgres {
		insert = insert.Returning("id")
	}
	return insert.Query()
}

func selectUsers(b *entsql.DialectBuilder) (string, []any) {
	return b.Select(userColumns...).
		From(b.Table(db.UsersTable)).
		OrderBy("id").
		Query()
}

func selectUser(b *entsql.DialectBuilder, id int64) (string, []any) {
	return b.Select(userColumns...).
		From(b.Table(db.UsersTable)).
		Where(entsql.EQ("id", id)).
		Query()
}

func updateUser(b *entsql.DialectBuilder, u *dom.User) (string, []any) {
	return b.Update(db.UsersTable).
		Set("name", u.Name).
		Set("email", u.Email).
		Where(entsql.EQ("id", u.ID)).
		Query()
}

func deleteUser(b *entsql.DialectBuilder, id int64) (string, []any) {
	return b.Delete(db.UsersTable).
		Where(entsql.EQ("id", id)).
		Query()
}
