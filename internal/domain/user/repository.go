package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByIDs returns the users that exist, in no particular order.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
