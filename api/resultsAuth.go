package api

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront-voting/constant"
	"storefront-voting/model"
	"storefront-voting/permission"
)

func ResultsJWT(secret string) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		Claims:     &model.ResultsClaims{},
		SigningKey: []byte(secret),
		AuthScheme: "Bearer",
	})
}

// RequireResultsScope runs after ResultsJWT.
func RequireResultsScope(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return c.JSON(http.StatusUnauthorized, &PayloadError{Errors: "Missing token"})
		}
		claims, _ := token.Claims.(*model.ResultsClaims)
		if !permission.ResultsPermission(claims) {
			return c.JSON(http.StatusForbidden, &PayloadError{Errors: "Permission denied"})
		}
		return next(c)
	}
}

func IssueResultsToken(secret string, ttl time.Duration) (string, error) {
	claims := &model.ResultsClaims{
		Scope: constant.SCOPE_RESULTS_READ,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
