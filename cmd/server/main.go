package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "todoapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"todoapi/internal/auth"
	"todoapi/internal/config"
	"todoapi/internal/db"
	"todoapi/internal/handler"
	"todoapi/internal/repository"
	"todoapi/internal/router"
	"todoapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Todo API
// @version 1.0
// @description Authenticated todo-list API with JWT bearer tokens and per-user task ownership.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongo, err := db.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := mongo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	// Repositories
	userRepo := repository.NewUserRepository(mongo.Users())
	todoRepo := repository.NewTodoRepository(mongo.Tasks())

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	todoService := service.NewTodoService(todoRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)

	router.Register(e, jwtService, userRepo, authHandler, todoHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := mongo.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
