package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Kirolos010/E-Commerce-API/internal/api/middleware"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	service "github.com/Kirolos010/E-Commerce-API/internal/services"
	"github.com/Kirolos010/E-Commerce-API/internal/utils"
	"github.com/Kirolos010/E-Commerce-API/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ResourceHandler serves the five CRUD endpoints for any resource whose
// service implements ResourceService. Category and Product differ only by
// entity type and schema, so both are instances of this one handler.
type ResourceHandler[E, C, U any] struct {
	name      string
	svc       service.ResourceService[E, C, U]
	validator *validator.Validate
}

func NewResourceHandler[E, C, U any](name string, svc service.ResourceService[E, C, U]) *ResourceHandler[E, C, U] {
	return &ResourceHandler[E, C, U]{name: name, svc: svc, validator: utils.NewValidator()}
}

func (h *ResourceHandler[E, C, U]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page := utils.ParsePage(r)

		items, total, err := h.svc.List(r.Context(), page)
		if err != nil {
			logger.Error("Failed to list resources", slog.String("resource", h.name), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Data(w, http.StatusOK, models.PaginatedResponse{
			Data:     items,
			Total:    total,
			Page:     page,
			PageSize: models.PageSize,
		})
	}
}

func (h *ResourceHandler[E, C, U]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req C
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.svc.Create(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create resource", slog.String("resource", h.name), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Message(w, http.StatusCreated, fmt.Sprintf("%s created successfully", h.name), item)
	}
}

func (h *ResourceHandler[E, C, U]) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		item, err := h.svc.GetByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get resource", slog.String("resource", h.name), slog.Int64("id", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Data(w, http.StatusOK, item)
	}
}

func (h *ResourceHandler[E, C, U]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req U
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.svc.Update(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update resource", slog.String("resource", h.name), slog.Int64("id", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Message(w, http.StatusOK, fmt.Sprintf("%s updated successfully", h.name), item)
	}
}

func (h *ResourceHandler[E, C, U]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.svc.Delete(r.Context(), id); err != nil {
			logger.Warn("Failed to delete resource", slog.String("resource", h.name), slog.Int64("id", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Message(w, http.StatusOK, fmt.Sprintf("%s deleted successfully", h.name), nil)
	}
}
