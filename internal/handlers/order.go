package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/service"
	"github.com/Skotchmaster/retail_shop/internal/util"
)

type OrderHandler struct {
	Orders    *service.OrderService
	JWTSecret []byte
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	_, size = util.Calculate(page, size)

	orders, total, err := h.Orders.ListOrders(c.Request().Context(), id.CID, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total":  total,
		"page":   page,
		"size":   size,
		"orders": orders,
	})
}

func (h *OrderHandler) GetOrderDetail(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	ono, err := strconv.Atoi(c.Param("ono"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	ctx := c.Request().Context()
	order, lines, err := h.Orders.GetOrderDetail(ctx, ono)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if order == nil || order.CID != id.CID {
		return c.JSON(http.StatusNotFound, Response{Status: "error", Message: "order not found"})
	}

	total, err := h.Orders.ComputeOrderTotal(ctx, ono)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"order": order,
		"lines": lines,
		"total": total,
	})
}
