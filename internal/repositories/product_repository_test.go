package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	repository "github.com/Kirolos010/E-Commerce-API/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{"id", "title", "description", "image", "price", "quantity", "category_id", "created_at", "updated_at"}
}

func TestProductRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	t.Run("Create", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`INSERT INTO products (title, description, image, price, quantity, category_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`)

		t.Run("Success", func(t *testing.T) {
			product := &models.Product{
				Title:       "Running Shoes",
				Description: "Lightweight trainers",
				Image:       "/img/runners.png",
				Price:       79.99,
				Quantity:    12,
				CategoryID:  3,
			}
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Title, product.Description, product.Image, product.Price, product.Quantity, product.CategoryID).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(int64(42), now, now))

			err := repo.Create(ctx, product)

			require.NoError(t, err)
			assert.Equal(t, int64(42), product.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			product := &models.Product{Title: "Running Shoes", CategoryID: 3}
			dbError := errors.New("database insertion error")

			mock.ExpectQuery(expectedSQL).
				WithArgs(product.Title, product.Description, product.Image, product.Price, product.Quantity, product.CategoryID).
				WillReturnError(dbError)

			err := repo.Create(ctx, product)

			require.Error(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetByID", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT id, title, description, image, price, quantity, category_id, created_at, updated_at FROM products WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			now := time.Now()

			mock.ExpectQuery(expectedSQL).
				WithArgs(int64(42)).
				WillReturnRows(sqlmock.NewRows(productColumns()).
					AddRow(int64(42), "Running Shoes", "Lightweight trainers", "/img/runners.png", 79.99, 12, int64(3), now, now))

			product, err := repo.GetByID(ctx, 42)

			require.NoError(t, err)
			require.NotNil(t, product)
			assert.Equal(t, int64(42), product.ID)
			assert.InDelta(t, 79.99, product.Price, 0.001)
			assert.Equal(t, int64(3), product.CategoryID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			mock.ExpectQuery(expectedSQL).
				WithArgs(int64(99)).
				WillReturnError(sql.ErrNoRows)

			product, err := repo.GetByID(ctx, 99)

			require.NoError(t, err)
			assert.Nil(t, product)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("List", func(t *testing.T) {
		countSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)
		listSQL := regexp.QuoteMeta(`SELECT id, title, description, image, price, quantity, category_id, created_at, updated_at FROM products ORDER BY id LIMIT $1 OFFSET $2`)

		now := time.Now()

		mock.ExpectQuery(countSQL).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(listSQL).
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(int64(42), "Running Shoes", "Lightweight trainers", "/img/runners.png", 79.99, 12, int64(3), now, now))

		products, total, err := repo.List(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, "Running Shoes", products[0].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`UPDATE products SET title = $1, description = $2, image = $3, price = $4, quantity = $5, category_id = $6, updated_at = NOW() WHERE id = $7 RETURNING updated_at`)

		product := &models.Product{
			ID:          42,
			Title:       "Trail Shoes",
			Description: "Grippy soles",
			Image:       "/img/trail.png",
			Price:       89.99,
			Quantity:    8,
			CategoryID:  3,
		}

		mock.ExpectQuery(expectedSQL).
			WithArgs(product.Title, product.Description, product.Image, product.Price, product.Quantity, product.CategoryID, product.ID).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

		err := repo.Update(ctx, product)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)

		t.Run("Deleted", func(t *testing.T) {
			mock.ExpectExec(expectedSQL).
				WithArgs(int64(42)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			deleted, err := repo.Delete(ctx, 42)

			require.NoError(t, err)
			assert.True(t, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NoRow", func(t *testing.T) {
			mock.ExpectExec(expectedSQL).
				WithArgs(int64(99)).
				WillReturnResult(sqlmock.NewResult(0, 0))

			deleted, err := repo.Delete(ctx, 99)

			require.NoError(t, err)
			assert.False(t, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}
