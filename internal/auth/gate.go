package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "todoapi/internal/errors"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const userContextKey = "currentUser"

// Middleware returns the bearer-token verification middleware for protected
// routes. Verification is delegated to the JWT service so the accepted
// signing method stays pinned in one place. Every failure kind collapses into
// the same unauthenticated response.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthenticated()
		},
	})
}

// ResolveUser resolves verified claims to a stored, active user and places it
// in the request context for handlers. Resolution prefers the user id claim
// and falls back to the subject email. Requests are authenticated
// independently; no session state is kept between them.
func ResolveUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return unauthenticated()
			}

			ctx := c.Request().Context()
			user, err := users.FindByID(ctx, claims.UserID)
			if errors.Is(err, apperrors.ErrUserNotFound) && claims.Subject != "" {
				user, err = users.FindByEmail(ctx, claims.Subject)
			}
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return unauthenticated()
			}
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !user.IsActive {
				return unauthenticated()
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user placed in the context by
// ResolveUser, or nil on an unauthenticated path.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

func unauthenticated() error {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
