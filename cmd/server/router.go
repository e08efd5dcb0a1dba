package main

import (
	"log/slog"

	"food_order/internal/config"
	"food_order/internal/handler"
	"food_order/internal/middleware"
	"food_order/internal/repository"
	"food_order/internal/service"
	"food_order/internal/utils"
	"food_order/internal/validation"

	"github.com/gin-gonic/gin"
)

// database is what the router needs from *pgxpool.Pool
type database interface {
	repository.DBTX
	handler.Pinger
}

// newRouter wires repositories, services and handlers onto a gin engine.
// productCache may be nil.
func newRouter(cfg *config.Config, db database, productCache service.ProductCache) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiration)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil, cfg.InitialAdminMobile)
	orderService := service.NewOrderService(orderRepo, validation.New())
	productService := service.NewProductService(productRepo, productCache)
	uploadService := service.NewUploadService(cfg.UploadsDir, cfg.PublicBaseURL)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService, cfg.IsDevelopment())
	productHandler := handler.NewProductHandler(productService)
	uploadHandler := handler.NewUploadHandler(uploadService, cfg.UploadsDir)
	healthHandler := handler.NewHealthHandler(db)

	metrics := middleware.NewMetrics()

	router := gin.New()
	router.MaxMultipartMemory = service.MaxImageSize
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(slog.Default()),
		metrics.Middleware(),
		middleware.CORSMiddleware(cfg.CORSWhitelist),
	)

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	optionalAuthMW := middleware.OptionalAuthMiddleware(jwtUtil)
	var adminRoleMW gin.HandlerFunc
	if cfg.OrdersAdminOnly {
		adminRoleMW = middleware.AdminMiddleware()
	}

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	orderHandler.RegisterOrderRoutes(apiGroup, jwtAuthMW, optionalAuthMW, adminRoleMW)
	productHandler.RegisterProductRoutes(apiGroup)
	uploadHandler.RegisterUploadRoutes(router, apiGroup)
	healthHandler.RegisterHealthRoutes(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
