package main

import (
	"log"
	"net/http"
	"os"

	_ "realty/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"realty/internal/auth"
	"realty/internal/cache"
	"realty/internal/config"
	"realty/internal/db"
	"realty/internal/handler"
	"realty/internal/model"
	"realty/internal/repository"
	"realty/internal/router"
	"realty/internal/service"
)

// @title Real Estate Listing API
// @version 1.0
// @description Real estate listing backend with agent/buyer roles, property applications, wishlists, and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.WishlistItem{},
			&model.Application{},
			&model.Property{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.Application{},
		&model.WishlistItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)
	wishlistRepo := repository.NewWishlistRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	propertyService := service.NewPropertyService(propertyRepo, cacheClient)
	applicationService := service.NewApplicationService(applicationRepo, propertyRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, propertyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		propertyHandler,
		applicationHandler,
		wishlistHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
