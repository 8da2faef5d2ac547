package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/mykafka"
	"github.com/Skotchmaster/retail_shop/internal/service"
	"github.com/Skotchmaster/retail_shop/internal/util"
)

type SearchHandler struct {
	Search    *service.SearchService
	Producer  *mykafka.Producer
	JWTSecret []byte
}

// Handler serves customer search: paginated, and every call is recorded
// against the customer's session.
func (h *SearchHandler) Handler(c echo.Context) error {
	id, err := GetIdentity(c, h.JWTSecret)
	if err != nil {
		return err
	}

	q := c.QueryParam("q")
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	_, size = util.Calculate(page, size)

	products, total, err := h.Search.CustomerSearch(c.Request().Context(), q, id.CID, id.SessionNo, time.Now(), page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, "search_events", map[string]interface{}{
		"type":  "customer_search",
		"cid":   id.CID,
		"query": q,
		"total": total,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total":    total,
		"page":     page,
		"size":     size,
		"products": products,
	})
}
