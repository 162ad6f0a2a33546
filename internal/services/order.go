package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kirolos010/E-Commerce-API/internal/errors"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	repository "github.com/Kirolos010/E-Commerce-API/internal/repositories"
	"github.com/Kirolos010/E-Commerce-API/pkg/sendgrid"
)

type OrderService interface {
	Create(ctx context.Context, userID int64, req *models.CreateOrderRequest) (*models.Order, error)
	GetByID(ctx context.Context, userID, id int64) (*models.OrderDetail, error)
	List(ctx context.Context, userID int64, page int) ([]models.Order, int, error)
	Update(ctx context.Context, userID, id int64, req *models.UpdateOrderRequest) (*models.OrderDetail, error)
	Delete(ctx context.Context, userID, id int64) error
}

type orderService struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	emailClient sendgrid.EmailClient
}

// emailClient may be nil, in which case order confirmations are skipped.
func NewOrderService(repo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, emailClient sendgrid.EmailClient) OrderService {
	return &orderService{repo: repo, productRepo: productRepo, userRepo: userRepo, emailClient: emailClient}
}

// Create snapshots the product price at the instant of creation. The same
// read serves the product_id existence check, so there is no window between
// validation and the snapshot.
func (s *orderService) Create(ctx context.Context, userID int64, req *models.CreateOrderRequest) (*models.Order, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to verify product").WithError(err)
	}

	if product == nil {
		return nil, errors.ValidationError("Validation failed").WithFields(map[string][]string{
			"product_id": {"The selected product_id is invalid."},
		})
	}

	order := &models.Order{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     product.Price,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	s.sendConfirmation(ctx, userID, order, product)

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, userID, id int64) (*models.OrderDetail, error) {
	order, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order == nil {
		return nil, errors.NotFoundError("Order not found")
	}

	return s.withProduct(ctx, order)
}

func (s *orderService) List(ctx context.Context, userID int64, page int) ([]models.Order, int, error) {
	orders, total, err := s.repo.ListByUser(ctx, userID, page, models.PageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) Update(ctx context.Context, userID, id int64, req *models.UpdateOrderRequest) (*models.OrderDetail, error) {
	order, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order == nil {
		return nil, errors.NotFoundError("Order not found or you are not authorized to update this order.")
	}

	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}

	// Price stays the creation-time snapshot regardless of quantity changes.
	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update order").WithError(err)
	}

	if !updated {
		return nil, errors.NotFoundError("Order not found or you are not authorized to update this order.")
	}

	return s.withProduct(ctx, order)
}

func (s *orderService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete order").WithError(err)
	}

	if !deleted {
		return errors.NotFoundError("Order not found or you are not authorized to delete this order.")
	}

	return nil
}

// withProduct joins the referenced product into the response. A product
// deleted after the order was placed yields a null product, not an error.
func (s *orderService) withProduct(ctx context.Context, order *models.Order) (*models.OrderDetail, error) {
	product, err := s.productRepo.GetByID(ctx, order.ProductID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return &models.OrderDetail{Order: order, Product: product}, nil
}

// sendConfirmation dispatches the order confirmation email without blocking
// the response. Failures are logged, never surfaced to the caller.
func (s *orderService) sendConfirmation(ctx context.Context, userID int64, order *models.Order, product *models.Product) {
	if s.emailClient == nil {
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()

		user, err := s.userRepo.GetByID(sendCtx, userID)
		if err != nil || user == nil {
			slog.Warn("Order confirmation skipped: user lookup failed", slog.Int64("order_id", order.ID), slog.Any("error", err))

			return
		}

		subject := fmt.Sprintf("Order #%d confirmed", order.ID)
		plain := fmt.Sprintf("Your order for %d x %s has been placed. Total: %.2f", order.Quantity, product.Title, order.Price*float64(order.Quantity))
		html := fmt.Sprintf("<p>Your order for <strong>%d x %s</strong> has been placed.</p><p>Total: %.2f</p>", order.Quantity, product.Title, order.Price*float64(order.Quantity))

		if err := s.emailClient.Send(sendCtx, user.Email, subject, plain, html); err != nil {
			slog.Warn("Order confirmation email failed", slog.Int64("order_id", order.ID), slog.Any("error", err))
		}
	}()
}
