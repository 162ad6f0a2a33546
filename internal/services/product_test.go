package service_test

import (
	"net/http"
	"testing"
	"time"

	cachemocks "github.com/Kirolos010/E-Commerce-API/internal/cache/mocks"
	apperrors "github.com/Kirolos010/E-Commerce-API/internal/errors"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	repomocks "github.com/Kirolos010/E-Commerce-API/internal/repositories/mocks"
	service "github.com/Kirolos010/E-Commerce-API/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createProductRequest() *models.CreateProductRequest {
	price := 79.99
	quantity := 12

	return &models.CreateProductRequest{
		Title:       "Running Shoes",
		Description: "Lightweight trainers",
		Image:       "/img/runners.png",
		Price:       &price,
		Quantity:    &quantity,
		CategoryID:  3,
	}
}

func TestProductService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &repomocks.ProductRepository{}
		categoryRepo := &repomocks.CategoryRepository{}
		svc := service.NewProductService(repo, categoryRepo, cachemocks.Noop(), time.Minute)

		categoryRepo.On("Exists", mock.Anything, int64(3)).Return(true, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Title == "Running Shoes" && p.Price == 79.99 && p.Quantity == 12 && p.CategoryID == 3
		})).Return(nil)

		product, err := svc.Create(t.Context(), createProductRequest())

		require.NoError(t, err)
		assert.InDelta(t, 79.99, product.Price, 0.001)
		repo.AssertExpectations(t)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		repo := &repomocks.ProductRepository{}
		categoryRepo := &repomocks.CategoryRepository{}
		svc := service.NewProductService(repo, categoryRepo, cachemocks.Noop(), time.Minute)

		categoryRepo.On("Exists", mock.Anything, int64(3)).Return(false, nil)

		_, err := svc.Create(t.Context(), createProductRequest())

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, []string{"The selected category_id is invalid."}, appErr.Fields["category_id"])
		repo.AssertNotCalled(t, "Create")
	})
}

func TestProductService_GetByID(t *testing.T) {
	t.Run("CacheMissReadsThrough", func(t *testing.T) {
		repo := &repomocks.ProductRepository{}
		c := &cachemocks.Cache{}
		svc := service.NewProductService(repo, &repomocks.CategoryRepository{}, c, time.Minute)

		stored := &models.Product{ID: 42, Title: "Running Shoes", Price: 79.99}

		c.On("Get", mock.Anything, "product:42", mock.Anything).Return(false, nil)
		repo.On("GetByID", mock.Anything, int64(42)).Return(stored, nil)
		c.On("Set", mock.Anything, "product:42", stored, time.Minute).Return(nil)

		product, err := svc.GetByID(t.Context(), 42)

		require.NoError(t, err)
		assert.Equal(t, stored, product)
		c.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := &repomocks.ProductRepository{}
		svc := service.NewProductService(repo, &repomocks.CategoryRepository{}, cachemocks.Noop(), time.Minute)

		repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		_, err := svc.GetByID(t.Context(), 99)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.Equal(t, "Product not found", appErr.Message)
	})
}

func TestProductService_Update(t *testing.T) {
	t.Run("ReassignsCategoryAfterCheck", func(t *testing.T) {
		repo := &repomocks.ProductRepository{}
		categoryRepo := &repomocks.CategoryRepository{}
		c := &cachemocks.Cache{}
		svc := service.NewProductService(repo, categoryRepo, c, time.Minute)

		repo.On("GetByID", mock.Anything, int64(42)).
			Return(&models.Product{ID: 42, Title: "Running Shoes", Price: 79.99, Quantity: 12, CategoryID: 3}, nil)
		categoryRepo.On("Exists", mock.Anything, int64(5)).Return(true, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.CategoryID == 5 && p.Price == 79.99
		})).Return(nil)
		c.On("Delete", mock.Anything, "product:42").Return(nil)

		newCategory := int64(5)

		product, err := svc.Update(t.Context(), 42, &models.UpdateProductRequest{CategoryID: &newCategory})

		require.NoError(t, err)
		assert.Equal(t, int64(5), product.CategoryID)
		repo.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		repo := &repomocks.ProductRepository{}
		categoryRepo := &repomocks.CategoryRepository{}
		svc := service.NewProductService(repo, categoryRepo, cachemocks.Noop(), time.Minute)

		repo.On("GetByID", mock.Anything, int64(42)).
			Return(&models.Product{ID: 42, CategoryID: 3}, nil)
		categoryRepo.On("Exists", mock.Anything, int64(99)).Return(false, nil)

		newCategory := int64(99)

		_, err := svc.Update(t.Context(), 42, &models.UpdateProductRequest{CategoryID: &newCategory})

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Contains(t, appErr.Fields, "category_id")
		repo.AssertNotCalled(t, "Update")
	})
}

func TestProductService_Delete(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		repo := &repomocks.ProductRepository{}
		svc := service.NewProductService(repo, &repomocks.CategoryRepository{}, cachemocks.Noop(), time.Minute)

		repo.On("Delete", mock.Anything, int64(99)).Return(false, nil)

		err := svc.Delete(t.Context(), 99)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	})
}
