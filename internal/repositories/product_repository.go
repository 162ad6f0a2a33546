package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kirolos010/E-Commerce-API/internal/models"
	"github.com/Kirolos010/E-Commerce-API/internal/utils"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, page, size int) ([]models.Product, int, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (title, description, image, price, quantity, category_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, product.Title, product.Description, product.Image, product.Price, product.Quantity, product.CategoryID).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `SELECT id, title, description, image, price, quantity, category_id, created_at, updated_at FROM products WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&product.ID, &product.Title, &product.Description, &product.Image, &product.Price, &product.Quantity, &product.CategoryID, &product.CreatedAt, &product.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context, page, size int) ([]models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products`

	if err := r.DB.QueryRowContext(dbCtx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT id, title, description, image, price, quantity, category_id, created_at, updated_at FROM products ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		var product models.Product

		err := rows.Scan(&product.ID, &product.Title, &product.Description, &product.Image, &product.Price, &product.Quantity, &product.CategoryID, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET title = $1, description = $2, image = $3, price = $4, quantity = $5, category_id = $6, updated_at = NOW() WHERE id = $7 RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, product.Title, product.Description, product.Image, product.Price, product.Quantity, product.CategoryID, product.ID).
		Scan(&product.UpdatedAt)
}

func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM products WHERE id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return false, fmt.Errorf("deleting product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}
