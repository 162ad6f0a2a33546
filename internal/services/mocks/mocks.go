// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/Kirolos010/E-Commerce-API/internal/models"
	"github.com/stretchr/testify/mock"
)

// ResourceService mocks service.ResourceService for any entity/schema
// combination.
type ResourceService[E, C, U any] struct {
	mock.Mock
}

func (m *ResourceService[E, C, U]) Create(ctx context.Context, req *C) (*E, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *ResourceService[E, C, U]) GetByID(ctx context.Context, id int64) (*E, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *ResourceService[E, C, U]) List(ctx context.Context, page int) ([]E, int, error) {
	args := m.Called(ctx, page)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]E), args.Int(1), args.Error(2)
}

func (m *ResourceService[E, C, U]) Update(ctx context.Context, id int64, req *U) (*E, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *ResourceService[E, C, U]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Create(ctx context.Context, userID int64, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, userID, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) GetByID(ctx context.Context, userID, id int64) (*models.OrderDetail, error) {
	args := m.Called(ctx, userID, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *OrderService) List(ctx context.Context, userID int64, page int) ([]models.Order, int, error) {
	args := m.Called(ctx, userID, page)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Order), args.Int(1), args.Error(2)
}

func (m *OrderService) Update(ctx context.Context, userID, id int64, req *models.UpdateOrderRequest) (*models.OrderDetail, error) {
	args := m.Called(ctx, userID, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *OrderService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)

	return args.Error(0)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.User), args.Error(1)
}
