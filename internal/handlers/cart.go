package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/mykafka"
	"github.com/Skotchmaster/retail_shop/internal/service"
)

type CartHandler struct {
	Cart      *service.CartService
	Orders    *service.OrderService
	Producer  *mykafka.Producer
	JWTSecret []byte
}

func (h *CartHandler) GetCart(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	items, err := h.Cart.List(c.Request().Context(), id.CID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var req struct {
		PID int `json:"pid"`
		Qty int `json:"qty"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.Qty < 1 {
		req.Qty = 1
	}

	if err := h.Cart.AddQuantity(c.Request().Context(), id.CID, id.SessionNo, req.PID, req.Qty); err != nil {
		return serviceError(err)
	}

	publish(c, h.Producer, "cart_events", map[string]interface{}{
		"type": "cart_item_added",
		"cid":  id.CID,
		"pid":  req.PID,
		"qty":  req.Qty,
	})

	items, err := h.Cart.List(c.Request().Context(), id.CID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// SetQuantity replaces the total for a product, capping silently at stock.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req struct {
		Qty int `json:"qty"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Cart.SetQuantity(c.Request().Context(), id.CID, id.SessionNo, pid, req.Qty); err != nil {
		return serviceError(err)
	}

	publish(c, h.Producer, "cart_events", map[string]interface{}{
		"type": "cart_quantity_set",
		"cid":  id.CID,
		"pid":  pid,
		"qty":  req.Qty,
	})

	return c.NoContent(http.StatusNoContent)
}

// SetQuantityStrict is the guarded variant: out-of-stock requests are
// refused instead of capped.
func (h *CartHandler) SetQuantityStrict(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req struct {
		Qty int `json:"qty"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ok, err := h.Cart.TrySetQuantityIfInStock(c.Request().Context(), id.CID, id.SessionNo, pid, req.Qty)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return c.JSON(http.StatusConflict, Response{Status: "error", Message: "quantity not available"})
	}

	publish(c, h.Producer, "cart_events", map[string]interface{}{
		"type": "cart_quantity_set",
		"cid":  id.CID,
		"pid":  pid,
		"qty":  req.Qty,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Cart.Remove(c.Request().Context(), id.CID, pid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, "cart_events", map[string]interface{}{
		"type": "cart_item_removed",
		"cid":  id.CID,
		"pid":  pid,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	if err := h.Cart.Clear(c.Request().Context(), id.CID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, "cart_events", map[string]interface{}{
		"type": "cart_cleared",
		"cid":  id.CID,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) Checkout(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	var req struct {
		ShippingAddress string `json:"shipping_address"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	ono, err := h.Cart.Checkout(ctx, id.CID, id.SessionNo, req.ShippingAddress, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	total, err := h.Orders.ComputeOrderTotal(ctx, ono)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, "cart_events", map[string]interface{}{
		"type":  "order_created",
		"cid":   id.CID,
		"ono":   ono,
		"total": total,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ono":   ono,
		"total": total,
	})
}
