package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

func TestAddToCartAndGetCart(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()
	cookie := env.accessToken(501, 1, "customer")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"pid": 2001, "qty": 3,
	}, cookie)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, 2001, items[0].PID)
	require.Equal(t, 3, items[0].Qty)
}

func TestAddToCartRequiresLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"pid": 2001, "qty": 1,
	})
	err := env.Cart.AddToCart(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAddToCartCapsAtStock(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()
	cookie := env.accessToken(501, 1, "customer")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"pid": 2003, "qty": 99,
	}, cookie)
	require.NoError(t, env.Cart.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Qty)
}

func TestSetQuantityStrictConflict(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()
	cookie := env.accessToken(501, 1, "customer")

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"pid": 2003, "qty": 1,
	}, cookie)
	require.NoError(t, env.Cart.AddToCart(c))

	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/cart/2003", map[string]interface{}{
		"qty": 50,
	}, cookie)
	c.SetParamNames("pid")
	c.SetParamValues("2003")
	require.NoError(t, env.Cart.SetQuantityStrict(c))
	require.Equal(t, http.StatusConflict, rec.Code)

	var rows []models.CartItem
	require.NoError(t, env.DB.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].Qty)
}

func TestCheckoutEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()
	cookie := env.accessToken(501, 1, "customer")

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"pid": 2001, "qty": 2,
	}, cookie)
	require.NoError(t, env.Cart.AddToCart(c))

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/cart/checkout", map[string]interface{}{
		"shipping_address": "12 Main St",
	}, cookie)
	require.NoError(t, env.Cart.Checkout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Ono   int     `json:"ono"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.Ono)
	require.InDelta(t, 51.00, resp.Total, 0.001)

	var remaining []models.CartItem
	require.NoError(t, env.DB.Where("cid = ?", 501).Find(&remaining).Error)
	require.Empty(t, remaining)
}
