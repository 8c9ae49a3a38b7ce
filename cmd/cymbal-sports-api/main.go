package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/handlers"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/middleware"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/cache"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/config"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/health"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/metrics"
	repository "github.com/aaravmahajanofficial/cymbal-sports-api/internal/repositories"
	service "github.com/aaravmahajanofficial/cymbal-sports-api/internal/services"
)

const version = "1.0.0"

func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Document store setup; the API still starts when it is down
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Warn("⚠️ Document store unavailable, serving with a refusing store", slog.String("error", err.Error()))
		repos = repository.NewUnavailable(err)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer catalogCache.Close()
	defer redisClient.Close()

	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	catalogService := service.NewCatalogService(repos.Inventory, catalogCache, cfg.Catalog.TopProductsCount, cfg.Catalog.RandomSeed)
	productHandler := handlers.NewProductHandler(catalogService)
	cartService := service.NewCartService(repos.Cart, repos.Inventory)
	cartHandler := handlers.NewCartHandler(cartService)
	userService := service.NewUserService(repos.User, rateLimiter, jwtKey, tokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	orderService := service.NewOrderService()
	orderHandler := handlers.NewOrderHandler(orderService)
	inventoryService := service.NewInventoryService(repos.Inventory, catalogCache, cfg.Catalog.InventoryCSV, cfg.Catalog.SeedBatchSize)
	adminHandler := handlers.NewAdminHandler(inventoryService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthChecker, err := health.NewHealthHandler(cfg, version)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router; metrics wrap each route so path values are already set
	routerMux := http.NewServeMux()
	route := func(pattern string, h http.Handler) {
		routerMux.Handle(pattern, metrics.Middleware(h))
	}

	route("GET /{$}", handlers.Home())
	route("GET /api/products/categories", productHandler.ListCategories())
	route("GET /api/products/top", productHandler.TopProducts())
	route("GET /api/products/search", productHandler.Search())
	route("GET /api/products/category/{category}", productHandler.ByCategory())
	route("GET /api/products/{id}", productHandler.GetProduct())
	route("POST /api/users", userHandler.CreateUser())
	route("POST /api/login", userHandler.Login())
	route("GET /api/orders/{id}", orderHandler.GetOrderStatus())
	route("POST /api/orders/{id}/return", orderHandler.ReturnOrder())
	route("POST /api/cart/add", cartHandler.AddItem())
	route("POST /api/cart/remove", cartHandler.RemoveItem())
	route("POST /api/cart/clear", cartHandler.ClearCart())
	route("GET /api/cart/{user_id}", cartHandler.GetCart())
	route("POST /api/admin/save_inventory", authMiddleware.Authenticate(adminHandler.SaveInventory()))
	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
