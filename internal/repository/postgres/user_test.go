package postgres_test

import (
	"context"
	"errors"
	"testing"

	"shareit-booking/internal/domain"
	"shareit-booking/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email FROM users WHERE id = \\$1").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "Ann", "ann@example.com"))

		u, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "ann@example.com", u.Email)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email FROM users").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

		u, err := repo.GetByID(ctx, 2)
		assert.Nil(t, u)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
