package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int, patch model.UpdateUserRequest) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. PasswordHash must already be hashed by the caller.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password, role, name, permissions)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, status, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, user.Username, user.PasswordHash, user.Role, user.Name, user.Permissions).
		Scan(&user.ID, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsername retrieves a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password, role, name, permissions, status, created_at, updated_at
            FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.Name,
		&user.Permissions, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is handled by the service layer
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, password, role, name, permissions, status, created_at, updated_at
            FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.Name,
		&user.Permissions, &user.Status, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// List retrieves all users. The password column is excluded from the projection.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	sql := `SELECT id, username, role, name, permissions, status, created_at, updated_at
            FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Role, &u.Name, &u.Permissions, &u.Status,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// Update applies a truthy-overwrite merge patch: only non-empty fields are
// written. The updated timestamp is always refreshed, and a missing id affects
// zero rows without error.
func (r *userRepository) Update(ctx context.Context, id int, patch model.UpdateUserRequest) error {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`UPDATE users SET updated_at = NOW()`)
	args := []any{}
	argCount := 1

	set := func(column, value string) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if patch.Username != "" {
		set("username", patch.Username)
	}
	if patch.Password != "" {
		set("password", patch.Password)
	}
	if patch.Role != "" {
		set("role", patch.Role)
	}
	if patch.Name != "" {
		set("name", patch.Name)
	}
	if patch.Permissions != "" {
		set("permissions", patch.Permissions)
	}
	if patch.Status != "" {
		set("status", patch.Status)
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE id = $%d", argCount))
	args = append(args, id)

	_, err := r.db.Exec(ctx, queryBuilder.String(), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete removes a user. Deleting a missing id is not an error.
func (r *userRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM users WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountByRole returns the number of users holding the given role
func (r *userRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}
