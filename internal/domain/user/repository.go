package user

import (
	"context"

	"userservice/internal/domain/common"
)

var ErrNotFound = common.NewNotFound("user")

// Repository is implemented by the SQL store. Update and Delete do not
// report whether a row matched.
type Repository interface {
	Create(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}
