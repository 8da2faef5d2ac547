package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/mykafka"
	"github.com/Skotchmaster/retail_shop/internal/service"
)

type AuthHandler struct {
	Auth      *service.AuthService
	JWTSecret []byte
	Producer  *mykafka.Producer
}

func CreateCookie(name, value, path string, expTime time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expTime,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uid, err := h.Auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return serviceError(err)
	}

	publish(c, h.Producer, "user_events", map[string]interface{}{
		"type": "customer_registered",
		"cid":  uid,
	})

	return c.JSON(http.StatusCreated, map[string]interface{}{"uid": uid, "cid": uid})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		UID      int    `json:"uid"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	user, err := h.Auth.Login(ctx, req.UID, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	sessionNo, err := h.Auth.StartSession(ctx, user.UID, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	accessExp := time.Now().Add(12 * time.Hour)
	claims := jwt.MapClaims{
		"sub":        user.UID,
		"role":       user.Role,
		"session_no": sessionNo,
		"exp":        accessExp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.JWTSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.SetCookie(CreateCookie("accessToken", signed, "/", accessExp))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"uid":        user.UID,
		"role":       user.Role,
		"session_no": sessionNo,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err == nil {
		if err := h.Auth.EndSession(c.Request().Context(), id.CID, id.SessionNo, time.Now()); err != nil {
			c.Logger().Errorf("end session error: %v", err)
		}
	}

	c.SetCookie(CreateCookie("accessToken", "", "/", time.Unix(0, 0)))
	return c.NoContent(http.StatusNoContent)
}
