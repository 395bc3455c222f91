package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portfolio-site/blog-api/internal/api/handler"
	"github.com/portfolio-site/blog-api/internal/api/middleware"
	"github.com/portfolio-site/blog-api/internal/core/service"
	"github.com/portfolio-site/blog-api/internal/infrastructure/config"
	mongodb "github.com/portfolio-site/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/portfolio-site/blog-api/internal/infrastructure/db/redis"
	"github.com/portfolio-site/blog-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, client *mongo.Client, db *mongo.Database, rdb *redis.Client) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	log := logger.Get()

	adminRepo := mongodb.NewAdminRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tagRepo := mongodb.NewTagRepository(db)
	txManager := mongodb.NewSessionTxManager(client)
	postCache := redisdb.NewPostCache(rdb, cfg.Redis.PublicCacheTTL)

	hasher := service.NewPasswordHasher(cfg.Auth.Pepper, cfg.Auth.BcryptCost)
	tokens, err := service.NewTokenServiceWithAlgorithm([]byte(cfg.JWT.Secret), cfg.JWT.Issuer, cfg.JWT.Algorithm, cfg.JWT.Lifetime(), cfg.JWT.Skew())
	if err != nil {
		return nil, err
	}
	csrfGuard := service.NewCsrfGuard([]byte(cfg.CSRF.Secret), cfg.CSRF.TokenType)

	authService := service.NewAuthService(adminRepo, hasher, tokens, log)
	postService := service.NewPostService(postRepo, tagRepo, txManager, postCache, log)
	tagService := service.NewTagService(tagRepo, postRepo, txManager, postCache, log)

	adminHandler := handler.NewAdminHandler(authService, csrfGuard)
	postHandler := handler.NewPostHandler(postService)
	tagHandler := handler.NewTagHandler(tagService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(tokens)
	csrfRequired := middleware.Csrf(csrfGuard, cfg.CSRF.HeaderName)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/api/v1")

	// --- Admin routes ---
	admin := v1.Group("/admin", csrfRequired)
	admin.GET("/csrftoken", adminHandler.CsrfToken)
	admin.POST("/register", adminHandler.Register)
	admin.POST("/login", adminHandler.Login)
	admin.POST("/logout", adminHandler.Logout)
	admin.GET("/myinfo", adminHandler.MyInfo, authRequired)
	admin.PUT("", adminHandler.Update, authRequired)
	admin.DELETE("", adminHandler.Delete, authRequired)

	// --- Post routes ---
	posts := v1.Group("/posts", csrfRequired)
	posts.GET("/public", postHandler.ListPublic)
	posts.GET("", postHandler.ListMine, authRequired)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, authRequired)
	posts.PUT("/:id", postHandler.Update, authRequired)
	posts.DELETE("/:id", postHandler.Delete, authRequired)

	// --- Tag routes ---
	tags := v1.Group("/tags", csrfRequired)
	tags.GET("", tagHandler.List)
	tags.GET("/:id", tagHandler.Get)
	tags.POST("", tagHandler.Create, authRequired)
	tags.PUT("/:id", tagHandler.Update, authRequired)
	tags.DELETE("/:id", tagHandler.Delete, authRequired)

	return e, nil
}
