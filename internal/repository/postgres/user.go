package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/logger"
	"shareit-booking/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`
	logger.DatabaseCall("users.GetByID", query, "userID", id)

	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("users.GetByID", 0, nil, "userID", id)
		return nil, domain.NotFoundf("user %d", id)
	}
	if err != nil {
		logger.DatabaseResult("users.GetByID", 0, err, "userID", id)
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	logger.DatabaseResult("users.GetByID", 1, nil, "userID", id)
	return u, nil
}
