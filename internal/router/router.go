package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contactbook/internal/config"
	"contactbook/internal/handler"
)

// Register wires routes and middleware. The two endpoint families share
// services but run behind different auth middleware: signed tokens for
// /auth and /contacts, debug tokens for the simple_* family.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	simpleAuthHandler *handler.SimpleAuthHandler,
	simpleContactHandler *handler.SimpleContactHandler,
	jwtAuth echo.MiddlewareFunc,
	debugAuth echo.MiddlewareFunc,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAccept},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Stored profile pictures are served as plain static files.
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/test-token", authHandler.TestToken, jwtAuth)

	contacts := api.Group("/contacts", jwtAuth)
	contacts.POST("", contactHandler.Create)
	contacts.GET("", contactHandler.List)
	contacts.GET("/:id", contactHandler.Get)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	simpleAuth := api.Group("/simple_auth")
	simpleAuth.POST("/register", simpleAuthHandler.Register)
	simpleAuth.POST("/login", simpleAuthHandler.Login)

	simpleContacts := api.Group("/simple_contacts", debugAuth)
	simpleContacts.POST("", simpleContactHandler.Create)
	simpleContacts.GET("", simpleContactHandler.List)
	simpleContacts.GET("/:id", simpleContactHandler.Get)
	simpleContacts.PUT("/:id", simpleContactHandler.Update)
	simpleContacts.DELETE("/:id", simpleContactHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
