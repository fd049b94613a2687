package repository

import (
	"context"
	"errors"
	"fmt"

	"survey_platform/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	// CreateIfAbsent inserts user unless the email already exists.
	// It reports false when nothing was inserted.
	CreateIfAbsent(ctx context.Context, user *model.User) (bool, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id string, role model.Role) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

// CreateIfAbsent relies on the unique email index, so concurrent creations
// with the same email insert at most one row.
func (r *userRepository) CreateIfAbsent(ctx context.Context, user *model.User) (bool, error) {
	sql := `INSERT INTO users (id, email, name, photo_url, role, created_at)
            VALUES ($1, $2, $3, $4, $5, $6)
            ON CONFLICT (email) DO NOTHING RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.ID, user.Email, user.Name, user.PhotoURL, string(user.Role), user.CreatedAt).Scan(&user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

// FindByEmail retrieves a user by email; (nil, nil) when absent
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	var role string
	sql := `SELECT id, email, name, photo_url, role, created_at FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&user.ID, &user.Email, &user.Name, &user.PhotoURL, &role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user.Role = model.Role(role)
	return user, nil
}

// FindAll lists users ordered by role, then email
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	sql := `SELECT id, email, name, photo_url, role, created_at FROM users ORDER BY role, email`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		u.Role = model.Role(role)
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// UpdateRole overwrites the role of a user and returns the matched row count
func (r *userRepository) UpdateRole(ctx context.Context, id string, role model.Role) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, string(role), id)
	if err != nil {
		return 0, fmt.Errorf("failed to update user role: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
