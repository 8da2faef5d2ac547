package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/retail_shop/internal/service"
)

type ReportHandler struct {
	Reports   *service.ReportService
	JWTSecret []byte
}

// WeeklyReport returns the seven-day summary, as markdown when the client
// asks for text.
func (h *ReportHandler) WeeklyReport(c echo.Context) error {
	asOf := time.Now()
	if v := c.QueryParam("as_of"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "as_of must be YYYY-MM-DD")
		}
		asOf = t
	}

	ctx := c.Request().Context()
	if c.QueryParam("format") == "markdown" {
		md, err := h.Reports.RenderWeeklyMarkdown(ctx, asOf)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.String(http.StatusOK, md)
	}

	summary, err := h.Reports.WeeklySummary(ctx, asOf)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) TopProducts(c echo.Context) error {
	k := parseIntDefault(c.QueryParam("k"), 3)
	includeTies := c.QueryParam("ties") != "false"

	ctx := c.Request().Context()
	var err error
	var rows interface{}
	switch c.QueryParam("by") {
	case "views":
		rows, err = h.Reports.TopProductsByViews(ctx, k, includeTies)
	default:
		rows, err = h.Reports.TopProductsByOrders(ctx, k, includeTies)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}
