// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"fmt"

	"wishfund/internal/domain"
	"wishfund/internal/repository"
	"wishfund/internal/util"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
// It holds no connection; every method runs on the DBExecutor it is given.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (username, created_at, updated_at)
              VALUES ($1, $2, $3) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Username, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		return translateError(err, util.ErrUserNotFound, "failed to create user")
	}
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, created_at, updated_at FROM users WHERE id = $1`
	if err := q.GetContext(ctx, &user, query, id); err != nil {
		return nil, translateError(err, util.ErrUserNotFound, fmt.Sprintf("failed to get user by ID %d", id))
	}
	return &user, nil
}
