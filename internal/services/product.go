package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kirolos010/E-Commerce-API/internal/api/middleware"
	"github.com/Kirolos010/E-Commerce-API/internal/cache"
	"github.com/Kirolos010/E-Commerce-API/internal/errors"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	repository "github.com/Kirolos010/E-Commerce-API/internal/repositories"
	"github.com/Kirolos010/E-Commerce-API/internal/utils"
)

type ProductService = ResourceService[models.Product, models.CreateProductRequest, models.UpdateProductRequest]

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
	cacheTTL     time.Duration
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, c cache.Cache, cacheTTL time.Duration) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo, cache: c, cacheTTL: cacheTTL}
}

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func invalidCategoryError() *errors.AppError {
	return errors.ValidationError("Validation failed").WithFields(map[string][]string{
		"category_id": {"The selected category_id is invalid."},
	})
}

func (s *productService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	exists, err := s.categoryRepo.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to verify category").WithError(err)
	}

	if !exists {
		return nil, invalidCategoryError()
	}

	product := &models.Product{
		Title:       utils.SanitizeText(req.Title),
		Description: utils.SanitizeText(req.Description),
		Image:       utils.SanitizeText(req.Image),
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		CategoryID:  req.CategoryID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	cached := &models.Product{}

	hit, err := s.cache.Get(ctx, productCacheKey(id), cached)
	if err != nil {
		logger.Warn("Product cache read failed", slog.Any("error", err))
	}

	if hit {
		return cached, nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	if err := s.cache.Set(ctx, productCacheKey(id), product, s.cacheTTL); err != nil {
		logger.Warn("Product cache write failed", slog.Any("error", err))
	}

	return product, nil
}

func (s *productService) List(ctx context.Context, page int) ([]models.Product, int, error) {
	products, total, err := s.repo.List(ctx, page, models.PageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product == nil {
		return nil, errors.NotFoundError("Product not found")
	}

	if req.CategoryID != nil {
		exists, err := s.categoryRepo.Exists(ctx, *req.CategoryID)
		if err != nil {
			return nil, errors.DatabaseError("Failed to verify category").WithError(err)
		}

		if !exists {
			return nil, invalidCategoryError()
		}

		product.CategoryID = *req.CategoryID
	}

	if req.Title != nil {
		product.Title = utils.SanitizeText(*req.Title)
	}

	if req.Description != nil {
		product.Description = utils.SanitizeText(*req.Description)
	}

	if req.Image != nil {
		product.Image = utils.SanitizeText(*req.Image)
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	if !deleted {
		return errors.NotFoundError("Product not found")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, productCacheKey(id)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed", slog.Any("error", err))
	}
}
