package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
)

// ClaimsFromContext extracts the verified claims stored by echo-jwt.
func ClaimsFromContext(c echo.Context) (jwt.MapClaims, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return nil, errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims")
	}
	return claims, nil
}

// ExtractUser pulls user id and role out of the verified token so handlers
// can read them without touching jwt types.
func ExtractUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFromContext(c)
			if err != nil {
				return echo.NewHTTPError(401, "unauthenticated")
			}
			sub, ok := claims["sub"].(float64)
			if !ok {
				return echo.NewHTTPError(401, "unauthenticated")
			}
			c.Set(userIDKey, int64(sub))
			if role, ok := claims["role"].(string); ok {
				c.Set(roleKey, role)
			}
			return next(c)
		}
	}
}

func UserID(c echo.Context) int64 {
	id, _ := c.Get(userIDKey).(int64)
	return id
}

func Role(c echo.Context) string {
	role, _ := c.Get(roleKey).(string)
	return role
}
