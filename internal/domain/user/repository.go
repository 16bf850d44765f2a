package user

import (
	"context"
)

// Repository stores users. There is no update: profile data is immutable once registered.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
