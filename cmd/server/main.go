package main

import (
	"log"
	"net/http"

	_ "contactbook/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"contactbook/internal/auth"
	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/handler"
	"contactbook/internal/middleware"
	"contactbook/internal/model"
	"contactbook/internal/repository"
	"contactbook/internal/router"
	"contactbook/internal/service"
	"contactbook/internal/storage"
)

// @title Contact Book API
// @version 1.0
// @description Multi-tenant contact management API with JWT and debug-token authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token. A raw token without the prefix is also accepted.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize token strategies
	jwtTokens := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	debugTokens := auth.NewDebugTokenService()

	// Initialize services
	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(contactRepo)

	images := storage.NewImageStore(cfg.UploadDir)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, jwtTokens, images)
	contactHandler := handler.NewContactHandler(contactService)
	simpleAuthHandler := handler.NewSimpleAuthHandler(userService, debugTokens)
	simpleContactHandler := handler.NewSimpleContactHandler(contactService)

	// Auth middleware, one per token strategy
	jwtAuth := middleware.Authenticate(jwtTokens, userService)
	debugAuth := middleware.Authenticate(debugTokens, userService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		contactHandler,
		simpleAuthHandler,
		simpleContactHandler,
		jwtAuth,
		debugAuth,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
