package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todoapi/internal/auth"
	"todoapi/internal/handler"
	"todoapi/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	todoHandler *handler.TodoHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes: token verification plus resolution to an active user
	secured := api.Group("", auth.Middleware(jwtService), auth.ResolveUser(userRepo))

	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/todos", todoHandler.List)
	secured.POST("/todos", todoHandler.Create)
	secured.GET("/todos/done", todoHandler.ListDone)
	secured.GET("/todos/:id", todoHandler.Get)
	secured.PUT("/todos/:id", todoHandler.Update)
	secured.DELETE("/todos/:id", todoHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
