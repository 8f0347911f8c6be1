package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/handlers"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cache"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cart"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/feed"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/health"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/lifecycle"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/metrics"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/telemetry"
	"github.com/aaravmahajanofficial/local-commerce-platform/pkg/logger"
	"github.com/aaravmahajanofficial/local-commerce-platform/pkg/objectstore"
	"github.com/aaravmahajanofficial/local-commerce-platform/pkg/sendgrid"
)

const version = "1.0.0"

func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	logger.New(logger.Options{
		Service: cfg.Otel.ServiceName,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := repos.Migrate(); err != nil {
			slog.Error("❌ Error applying migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimiter := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	orderFeed := feed.NewRedisFeed(redisClient, repos.Order, cfg.Commerce.FeedChannelPrefix)

	// a nil interface, not a typed nil, so the product service can tell uploads are off
	var images objectstore.Store
	s3Store, err := objectstore.New(ctx, cfg.Storage)
	switch {
	case errors.Is(err, objectstore.ErrNotConfigured):
		slog.Warn("Object storage not configured, product image uploads are disabled")
	case err != nil:
		slog.Error("❌ Error initializing object storage", slog.String("error", err.Error()))
		os.Exit(1)
	default:
		images = s3Store
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour
	emailService := sendgrid.NewEmailService(cfg.SendGrid)
	cartLocks := service.NewCartLocks()

	userService := service.NewUserService(repos.User, repos.Shop, rateLimiter, jwtKey, tokenTTL)
	shopService := service.NewShopService(repos.Shop, redisCache, cfg.Cache.ShopTTL, cfg.Commerce.DefaultCommissionRate)
	productService := service.NewProductService(repos.Product, repos.Shop, images)
	cartService := service.NewCartService(cart.NewCacheStore(redisCache, cfg.Cache.CartTTL), repos.Product, repos.Shop, cartLocks)
	notificationService := service.NewNotificationService(repos.Notification, emailService)
	orderService := service.NewOrderService(
		repos.Order,
		repos.Shop,
		repos.User,
		cart.NewCacheStore(redisCache, cfg.Cache.CartTTL),
		cartLocks,
		orderFeed,
		notificationService,
		lifecycle.NewCodeGenerator(cfg.Commerce.OrderCodePrefix, cfg.Commerce.OrderCodeDigits),
	)
	analyticsService := service.NewAnalyticsService(repos.Order, repos.Shop, repos.User)

	userHandler := handlers.NewUserHandler(userService)
	shopHandler := handlers.NewShopHandler(shopService, productService, analyticsService)
	productHandler := handlers.NewProductHandler(productService, cfg.Storage.MaxUploadMB)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(shopService, analyticsService, notificationService)
	liveHandler := handlers.NewLiveHandler(shopService, orderFeed, cfg.Commerce.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	customer := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireRole(h, models.RoleCustomer))
	}
	owner := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireRole(h, models.RoleShopOwner))
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireRole(h, models.RoleAdmin))
	}

	healthHandler, err := health.NewHealthHandler(cfg, version)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("GET /api/v1/shops", shopHandler.ListShops())
	routerMux.HandleFunc("GET /api/v1/shops/{id}", shopHandler.GetShop())
	routerMux.HandleFunc("GET /api/v1/shops/{id}/products", shopHandler.ListShopProducts())
	routerMux.HandleFunc("GET /api/v1/products", productHandler.Catalog())
	routerMux.HandleFunc("GET /api/v1/products/search", productHandler.Search())
	routerMux.HandleFunc("GET /api/v1/products/offers", productHandler.Offers())

	routerMux.HandleFunc("GET /api/v1/cart", customer(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", customer(cartHandler.AddItem()))
	routerMux.HandleFunc("POST /api/v1/cart/replace", customer(cartHandler.ReplaceCart()))
	routerMux.HandleFunc("PUT /api/v1/cart/items/{productId}", customer(cartHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", customer(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", customer(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/orders", customer(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", customer(orderHandler.ListMyOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{orderId}", authMiddleware.Authenticate(orderHandler.GetOrder()))

	routerMux.HandleFunc("POST /api/v1/shop", owner(shopHandler.RegisterShop()))
	routerMux.HandleFunc("GET /api/v1/shop", owner(shopHandler.GetMyShop()))
	routerMux.HandleFunc("PUT /api/v1/shop", owner(shopHandler.UpdateMyShop()))
	routerMux.HandleFunc("PATCH /api/v1/shop/open", owner(shopHandler.SetOpen()))
	routerMux.HandleFunc("GET /api/v1/shop/analytics", owner(shopHandler.Analytics()))
	routerMux.HandleFunc("GET /api/v1/shop/orders", owner(orderHandler.ListShopOrders()))
	routerMux.HandleFunc("GET /api/v1/shop/orders/live", owner(liveHandler.Board()))
	routerMux.HandleFunc("PATCH /api/v1/shop/orders/{orderId}/status", owner(orderHandler.UpdateStatus()))
	routerMux.HandleFunc("GET /api/v1/shop/products", owner(productHandler.ListMyProducts()))
	routerMux.HandleFunc("POST /api/v1/shop/products", owner(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/shop/products/{id}", owner(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/shop/products/{id}", owner(productHandler.DeleteProduct()))
	routerMux.HandleFunc("PATCH /api/v1/shop/products/{id}/stock", owner(productHandler.SetStock()))
	routerMux.HandleFunc("POST /api/v1/shop/products/{id}/image", owner(productHandler.UploadImage()))

	routerMux.HandleFunc("GET /api/v1/admin/shops", admin(adminHandler.ListShops()))
	routerMux.HandleFunc("PATCH /api/v1/admin/shops/{id}/approve", admin(adminHandler.ApproveShop()))
	routerMux.HandleFunc("PATCH /api/v1/admin/shops/{id}/suspend", admin(adminHandler.SuspendShop()))
	routerMux.HandleFunc("PATCH /api/v1/admin/shops/{id}/reactivate", admin(adminHandler.ReactivateShop()))
	routerMux.HandleFunc("PATCH /api/v1/admin/shops/{id}/commission", admin(adminHandler.UpdateCommission()))
	routerMux.HandleFunc("DELETE /api/v1/admin/shops/{id}", admin(adminHandler.DeleteShop()))
	routerMux.HandleFunc("GET /api/v1/admin/customers", admin(userHandler.ListCustomers()))
	routerMux.HandleFunc("GET /api/v1/admin/orders", admin(orderHandler.ListAllOrders()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{orderId}/status", admin(orderHandler.UpdateStatus()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{orderId}/commission", admin(orderHandler.MarkCommissionPaid()))
	routerMux.HandleFunc("GET /api/v1/admin/stats", admin(adminHandler.Stats()))
	routerMux.HandleFunc("GET /api/v1/admin/analytics", admin(adminHandler.Analytics()))
	routerMux.HandleFunc("GET /api/v1/admin/notifications", admin(adminHandler.ListNotifications()))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = telemetry.Middleware(cfg.Otel.ServiceName)(handler)

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
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
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

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
