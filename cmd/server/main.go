package main

import (
	"log"
	"net/http"
	"os"

	_ "publicity/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"publicity/internal/auth"
	"publicity/internal/cache"
	"publicity/internal/config"
	"publicity/internal/db"
	"publicity/internal/handler"
	"publicity/internal/model"
	"publicity/internal/repository"
	"publicity/internal/router"
	"publicity/internal/service"
)

// @title Publicity API
// @version 1.0
// @description REST backend exposing users and publicity postings, with HTTP Basic Auth and short-lived bearer tokens guarding mutations.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.basic BasicAuth
// @description Username is either a nickname or a previously issued token.
func main() {
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
			&model.Publicity{},
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
		&model.Publicity{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	publicityRepo := repository.NewPublicityRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL)
	guard := auth.NewGuard(userRepo, tokenService)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	publicityService := service.NewPublicityService(publicityRepo, cacheClient)

	// Initialize handlers
	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	publicityHandler := handler.NewPublicityHandler(publicityService)

	// Register routes
	if err := router.Register(
		e,
		guard,
		tokenHandler,
		userHandler,
		publicityHandler,
	); err != nil {
		log.Fatalf("router init: %v", err)
	}

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
