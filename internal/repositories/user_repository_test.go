package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	repository "github.com/Kirolos010/E-Commerce-API/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	ctx := t.Context()

	t.Run("Create", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`)

		user := &models.User{Name: "New User", Email: "new@example.com", Password: "hashed"}
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs(user.Name, user.Email, user.Password).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(5), now, now))

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByEmail", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = $1`)

		t.Run("Success", func(t *testing.T) {
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs("new@example.com").
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at", "updated_at"}).
					AddRow(int64(5), "New User", "new@example.com", "hashed", now, now))

			user, err := repo.GetByEmail(ctx, "new@example.com")

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, int64(5), user.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			mock.ExpectQuery(expectedSQL).
				WithArgs("nobody@example.com").
				WillReturnError(sql.ErrNoRows)

			user, err := repo.GetByEmail(ctx, "nobody@example.com")

			require.NoError(t, err)
			assert.Nil(t, user)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetByID", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, name, email, password, created_at, updated_at FROM users WHERE id = $1`)

		t.Run("NotFound", func(t *testing.T) {
			mock.ExpectQuery(expectedSQL).
				WithArgs(int64(99)).
				WillReturnError(sql.ErrNoRows)

			user, err := repo.GetByID(ctx, 99)

			require.NoError(t, err)
			assert.Nil(t, user)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
