package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"game_catalog/internal/model"
)

// UserRepository defines operations for account data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByMobile(ctx context.Context, mobile string) (*model.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, password_hash, mobile, gender, role, created_at`

// Create inserts a new user into the database. The unique constraints on
// email and mobile are the storage-level backstop for the service's
// read-then-write uniqueness checks.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (first_name, last_name, email, password_hash, mobile, gender, role, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Mobile, user.Gender, user.Role, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email. Not found is (nil, nil); the
// service layer decides what that means.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, sql, email), "email")
}

// FindByMobile retrieves a user by mobile number. Not found is (nil, nil).
func (r *userRepository) FindByMobile(ctx context.Context, mobile string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE mobile = $1`
	return r.scanUser(r.db.QueryRow(ctx, sql, mobile), "mobile")
}

func (r *userRepository) scanUser(row pgx.Row, by string) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash,
		&user.Mobile, &user.Gender, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", by, err)
	}
	return user, nil
}
