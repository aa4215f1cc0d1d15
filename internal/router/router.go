package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"publicity/internal/auth"
	"publicity/internal/handler"
	"publicity/internal/validation"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	guard *auth.Guard,
	tokenHandler *handler.TokenHandler,
	userHandler *handler.UserHandler,
	publicityHandler *handler.PublicityHandler,
) error {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	v := validator.New()
	if err := validation.Register(v); err != nil {
		return err
	}
	e.Validator = &CustomValidator{validator: v}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	authRequired := guard.Middleware()

	api.GET("/token", tokenHandler.Get, authRequired)

	// Public routes
	api.POST("/user", userHandler.Create)
	api.GET("/publicity", publicityHandler.List)
	api.GET("/publicity/:id", publicityHandler.Get)

	// Routes requiring authentication; ownership is checked in the services.
	api.GET("/user/:nickname", userHandler.Get, authRequired)
	api.PUT("/user/:nickname", userHandler.Update, authRequired)
	api.DELETE("/user/:nickname", userHandler.Delete, authRequired)
	api.POST("/publicity", publicityHandler.Create, authRequired)
	api.PUT("/publicity/:id", publicityHandler.Update, authRequired)
	api.DELETE("/publicity/:id", publicityHandler.Delete, authRequired)

	return nil
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
