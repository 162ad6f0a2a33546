package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Kirolos010/E-Commerce-API/internal/api/middleware"
	"github.com/Kirolos010/E-Commerce-API/internal/errors"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	service "github.com/Kirolos010/E-Commerce-API/internal/services"
	"github.com/Kirolos010/E-Commerce-API/internal/utils"
	"github.com/Kirolos010/E-Commerce-API/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: utils.NewValidator()}
}

// CreateOrder godoc
//
//	@Summary		Create a new order
//	@Description	Places an order for a single product. The price is snapshotted from the product at creation time.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Order details"
//	@Success		201		{object}	response.Envelope{data=models.Order}
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			logger.Warn("Unauthorized order creation attempt")
			response.Error(w, errors.UnauthorizedError("Unauthorized"))

			return
		}

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.Create(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create order", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order created successfully", slog.Int64("order_id", order.ID))
		response.Message(w, http.StatusCreated, "Order created successfully", order)
	}
}

// GetOrder godoc
//
//	@Summary	Get an order by ID
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	response.Envelope{data=models.OrderDetail}
//	@Failure	401	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Security	BearerAuth
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.UnauthorizedError("Unauthorized"))

			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		detail, err := h.orderService.GetByID(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Warn("Failed to get order", slog.Int64("order_id", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Data(w, http.StatusOK, detail)
	}
}

// ListOrders godoc
//
//	@Summary	List the caller's orders
//	@Tags		Orders
//	@Produce	json
//	@Param		page	query		int	false	"Page number (default 1)"
//	@Success	200		{object}	response.Envelope{data=models.PaginatedResponse}
//	@Failure	401		{object}	response.Envelope
//	@Security	BearerAuth
//	@Router		/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.UnauthorizedError("Unauthorized"))

			return
		}

		page := utils.ParsePage(r)

		orders, total, err := h.orderService.List(r.Context(), claims.UserID, page)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Data(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: models.PageSize,
		})
	}
}

// UpdateOrder godoc
//
//	@Summary	Update an order's quantity
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Order ID"
//	@Param		order	body		models.UpdateOrderRequest	true	"Fields to update"
//	@Success	200		{object}	response.Envelope{data=models.OrderDetail}
//	@Failure	401		{object}	response.Envelope
//	@Failure	404		{object}	response.Envelope
//	@Security	BearerAuth
//	@Router		/orders/{id} [put]
func (h *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.UnauthorizedError("Unauthorized"))

			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		detail, err := h.orderService.Update(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Warn("Failed to update order", slog.Int64("order_id", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Message(w, http.StatusOK, "Order updated successfully", detail)
	}
}

// DeleteOrder godoc
//
//	@Summary	Delete an order
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	response.Envelope
//	@Failure	401	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Security	BearerAuth
//	@Router		/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.UnauthorizedError("Unauthorized"))

			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.orderService.Delete(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to delete order", slog.Int64("order_id", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Message(w, http.StatusOK, "Order deleted successfully", nil)
	}
}
