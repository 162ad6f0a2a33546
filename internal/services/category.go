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

type CategoryService = ResourceService[models.Category, models.CreateCategoryRequest, models.UpdateCategoryRequest]

type categoryService struct {
	repo     repository.CategoryRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewCategoryService(repo repository.CategoryRepository, c cache.Cache, cacheTTL time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: c, cacheTTL: cacheTTL}
}

func categoryCacheKey(id int64) string {
	return fmt.Sprintf("category:%d", id)
}

func (s *categoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Title: utils.SanitizeText(req.Title),
		Image: utils.SanitizeText(req.Image),
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	logger := middleware.LoggerFromContext(ctx)

	cached := &models.Category{}

	hit, err := s.cache.Get(ctx, categoryCacheKey(id), cached)
	if err != nil {
		logger.Warn("Category cache read failed", slog.Any("error", err))
	}

	if hit {
		return cached, nil
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	if category == nil {
		return nil, errors.NotFoundError("Category not found")
	}

	if err := s.cache.Set(ctx, categoryCacheKey(id), category, s.cacheTTL); err != nil {
		logger.Warn("Category cache write failed", slog.Any("error", err))
	}

	return category, nil
}

func (s *categoryService) List(ctx context.Context, page int) ([]models.Category, int, error) {
	categories, total, err := s.repo.List(ctx, page, models.PageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, total, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch category").WithError(err)
	}

	if category == nil {
		return nil, errors.NotFoundError("Category not found")
	}

	if req.Title != nil {
		category.Title = utils.SanitizeText(*req.Title)
	}

	if req.Image != nil {
		category.Image = utils.SanitizeText(*req.Image)
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	s.invalidate(ctx, id)

	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete category").WithError(err)
	}

	if !deleted {
		return errors.NotFoundError("Category not found")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *categoryService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, categoryCacheKey(id)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Category cache invalidation failed", slog.Any("error", err))
	}
}
