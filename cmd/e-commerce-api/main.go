package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kirolos010/E-Commerce-API/internal/api/handlers"
	"github.com/Kirolos010/E-Commerce-API/internal/api/middleware"
	"github.com/Kirolos010/E-Commerce-API/internal/cache"
	"github.com/Kirolos010/E-Commerce-API/internal/config"
	"github.com/Kirolos010/E-Commerce-API/internal/health"
	"github.com/Kirolos010/E-Commerce-API/internal/metrics"
	repository "github.com/Kirolos010/E-Commerce-API/internal/repositories"
	service "github.com/Kirolos010/E-Commerce-API/internal/services"
	"github.com/Kirolos010/E-Commerce-API/internal/telemetry"
	"github.com/Kirolos010/E-Commerce-API/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	readCache := cache.NewRedisCache(redisClient, cfg.Cache.TTL)

	// Order confirmation emails are optional; skipped without an API key.
	var emailClient sendgrid.EmailClient
	if cfg.SendGrid.APIKey != "" {
		emailClient = sendgrid.NewEmailClient(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	userService := service.NewUserService(repos.User, jwtKey, cfg.Security.TokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	categoryService := service.NewCategoryService(repos.Category, readCache, cfg.Cache.TTL)
	categoryHandler := handlers.NewResourceHandler("Category", categoryService)
	productService := service.NewProductService(repos.Product, repos.Category, readCache, cfg.Cache.TTL)
	productHandler := handlers.NewResourceHandler("Product", productService)
	orderService := service.NewOrderService(repos.Order, repos.Product, repos.User, emailClient)
	orderHandler := handlers.NewOrderHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /users/register", userHandler.Register())
	routerMux.HandleFunc("POST /users/login", userHandler.Login())
	routerMux.HandleFunc("GET /user", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("GET /categories", categoryHandler.List())
	routerMux.HandleFunc("GET /categories/{id}", categoryHandler.Get())
	routerMux.HandleFunc("POST /categories", authMiddleware.Authenticate(categoryHandler.Create()))
	routerMux.HandleFunc("PUT /categories/{id}", authMiddleware.Authenticate(categoryHandler.Update()))
	routerMux.HandleFunc("DELETE /categories/{id}", authMiddleware.Authenticate(categoryHandler.Delete()))

	routerMux.HandleFunc("GET /products", productHandler.List())
	routerMux.HandleFunc("GET /products/{id}", productHandler.Get())
	routerMux.HandleFunc("POST /products", authMiddleware.Authenticate(productHandler.Create()))
	routerMux.HandleFunc("PUT /products/{id}", authMiddleware.Authenticate(productHandler.Update()))
	routerMux.HandleFunc("DELETE /products/{id}", authMiddleware.Authenticate(productHandler.Delete()))

	routerMux.HandleFunc("GET /orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("POST /orders", authMiddleware.Authenticate(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PUT /orders/{id}", authMiddleware.Authenticate(orderHandler.UpdateOrder()))
	routerMux.HandleFunc("DELETE /orders/{id}", authMiddleware.Authenticate(orderHandler.DeleteOrder()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	slog.Info("Server shut down gracefully. All connections closed.")
}
