package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/officedesk/backoffice-go/internal/domain/auth"
	"github.com/officedesk/backoffice-go/internal/pkg/database"
)

const pgUniqueViolation = "23505"

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepository{db: db}
}

// GetByEmail implements auth.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByID implements auth.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Create implements auth.UserRepository.
func (u *userRepository) Create(ctx context.Context, newUser auth.User) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newUser.ID, newUser.Email, newUser.PasswordHash).
		Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return auth.User{}, auth.ErrEmailExists
		}
		return auth.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}
