package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/mykafka"
	"github.com/Skotchmaster/retail_shop/internal/service"
)

type ProductHandler struct {
	Catalog   *service.CatalogService
	Search    *service.SearchService
	Producer  *mykafka.Producer
	JWTSecret []byte
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	product, err := h.Catalog.GetProduct(c.Request().Context(), pid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if product == nil {
		return c.JSON(http.StatusNotFound, Response{Status: "error", Message: "product not found"})
	}

	// a logged-in customer viewing a product detail leaves a view record
	if id, err := GetIdentity(c, h.JWTSecret); err == nil && id.Role == "customer" {
		if err := h.Catalog.RecordView(c.Request().Context(), id.CID, id.SessionNo, pid, time.Now()); err != nil {
			c.Logger().Errorf("record view error: %v", err)
		}
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req models.Product
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Catalog.CreateProduct(c.Request().Context(), &req); err != nil {
		return serviceError(err)
	}

	publish(c, h.Producer, "product_events", map[string]interface{}{
		"type": "product_created",
		"pid":  req.PID,
		"name": req.Name,
	})

	return c.JSON(http.StatusCreated, req)
}

// PatchProduct updates price and/or stock, the only administrative product
// mutation the sales screens expose.
func (h *ProductHandler) PatchProduct(c echo.Context) error {
	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req struct {
		Price      *float64 `json:"price"`
		StockCount *int     `json:"stock_count"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	updated, err := h.Catalog.UpdatePriceStock(c.Request().Context(), pid, req.Price, req.StockCount)
	if err != nil {
		return serviceError(err)
	}
	if !updated {
		return c.JSON(http.StatusNotFound, Response{Status: "error", Message: "nothing updated"})
	}

	publish(c, h.Producer, "product_events", map[string]interface{}{
		"type": "product_updated",
		"pid":  pid,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{"updated": true})
}

// AdminSearch is the mixed staff search; nothing is recorded.
func (h *ProductHandler) AdminSearch(c echo.Context) error {
	items, err := h.Search.AdminSearch(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"total":    len(items),
		"products": items,
	})
}
