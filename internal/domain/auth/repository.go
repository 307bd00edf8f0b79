package auth

import "context"

// UserRepository defines data access for login users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}
