package middleware

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"contactbook/internal/auth"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/service"
)

// userContextKey is where the resolved user is stored in the echo context.
const userContextKey = "user"

// Authenticate builds the bearer-token middleware for one token strategy.
// The Authorization header is accepted both as "Bearer <token>" and as a
// raw token for backward compatibility. On success the resolved user is
// stored in the request context; every failure is a 401.
func Authenticate(tokens auth.TokenService, users service.UserService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       userContextKey,
		TokenLookupFuncs: []echomw.ValuesExtractor{authHeaderExtractor},
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			userID, err := tokens.Verify(token)
			if err != nil {
				return nil, err
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return nil, err
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			message := apperrors.ErrUnauthorized.Error()
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired):
				message = apperrors.ErrTokenExpired.Error()
			case errors.Is(err, apperrors.ErrTokenInvalid):
				message = apperrors.ErrTokenInvalid.Error()
			case errors.Is(err, apperrors.ErrUserNotFound):
				message = apperrors.ErrUserNotFound.Error()
			}
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: message,
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// authHeaderExtractor pulls the token out of the Authorization header,
// stripping an optional "Bearer " prefix.
func authHeaderExtractor(c echo.Context) ([]string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, apperrors.ErrUnauthorized
	}
	token := header
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		token = header[7:]
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return []string{token}, nil
}

// CurrentUser returns the user resolved by Authenticate for this request.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}
