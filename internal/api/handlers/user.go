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

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: utils.NewValidator()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to register user", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User registered", slog.Int64("user_id", user.ID))
		response.Message(w, http.StatusCreated, "User registered successfully", user)
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Data(w, http.StatusOK, result)
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, errors.UnauthorizedError("Unauthorized"))

			return
		}

		user, err := h.userService.Profile(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Data(w, http.StatusOK, user)
	}
}
