package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/handlers"
)

func RequireLogin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := handlers.GetIdentity(c, secret); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// SalesOnly admits only staff accounts.
func SalesOnly(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := handlers.GetIdentity(c, secret)
			if err != nil {
				return err
			}
			if id.Role != "sales" {
				return echo.NewHTTPError(http.StatusForbidden, "you don't have enough rights")
			}
			return next(c)
		}
	}
}
