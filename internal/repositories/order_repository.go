package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kirolos010/E-Commerce-API/internal/models"
	"github.com/Kirolos010/E-Commerce-API/internal/utils"
)

// Every read and write is scoped by user_id at the query level, so a
// mismatched id+owner pair is indistinguishable from a nonexistent id.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByIDAndUser(ctx context.Context, id, userID int64) (*models.Order, error)
	ListByUser(ctx context.Context, userID int64, page, size int) ([]models.Order, int, error)
	Update(ctx context.Context, order *models.Order) (bool, error)
	DeleteByIDAndUser(ctx context.Context, id, userID int64) (bool, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO orders (user_id, product_id, quantity, price) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, order.UserID, order.ProductID, order.Quantity, order.Price).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	query := `SELECT id, user_id, product_id, quantity, price, created_at, updated_at FROM orders WHERE id = $1 AND user_id = $2`

	err := r.DB.QueryRowContext(dbCtx, query, id, userID).
		Scan(&order.ID, &order.UserID, &order.ProductID, &order.Quantity, &order.Price, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("querying order: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT id, user_id, product_id, quantity, price, created_at, updated_at FROM orders WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		var order models.Order

		err := rows.Scan(&order.ID, &order.UserID, &order.ProductID, &order.Quantity, &order.Price, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// Update persists the mutable fields of an owned order. The stored price is
// never touched. Returns false when the order does not exist for this user.
func (r *orderRepository) Update(ctx context.Context, order *models.Order) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET quantity = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3 RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, order.Quantity, order.ID, order.UserID).
		Scan(&order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("updating order: %w", err)
	}

	return true, nil
}

func (r *orderRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM orders WHERE id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting order: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}
