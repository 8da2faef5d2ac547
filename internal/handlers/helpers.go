package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/mykafka"
	"github.com/Skotchmaster/retail_shop/internal/service"
)

// serviceError maps the service sentinels onto HTTP status codes.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorResponse(c echo.Context, code int, err error) error {
	return c.JSON(code, Response{
		Status:  "error",
		Message: err.Error(),
	})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Identity is what the access token carries: the customer and the session
// that issued it. The core treats both as opaque.
type Identity struct {
	CID       int
	SessionNo int
	Role      string
}

func parseClaims(c echo.Context, secret []byte) (jwt.MapClaims, error) {
	cookie, err := c.Cookie("accessToken")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing auth cookie")
	}
	tokenString := cookie.Value
	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "empty token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token: "+err.Error())
	}
	if !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// GetIdentity extracts the signed identity from the accessToken cookie.
func GetIdentity(c echo.Context, secret []byte) (Identity, error) {
	claims, err := parseClaims(c, secret)
	if err != nil {
		return Identity{}, err
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return Identity{}, echo.NewHTTPError(http.StatusBadRequest, "invalid subject claim")
	}
	sessionNo, ok := claims["session_no"].(float64)
	if !ok {
		return Identity{}, echo.NewHTTPError(http.StatusBadRequest, "invalid session claim")
	}
	role, _ := claims["role"].(string)

	return Identity{CID: int(sub), SessionNo: int(sessionNo), Role: role}, nil
}

func publish(c echo.Context, producer *mykafka.Producer, topic string, event map[string]interface{}) {
	if producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, fmt.Sprint(event["cid"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
