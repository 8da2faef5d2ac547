package repo

import (
	"context"
	"time"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

type WeeklySummaryRow struct {
	DistinctOrders       int     `json:"distinct_orders"`
	DistinctProductsSold int     `json:"distinct_products_sold"`
	DistinctCustomers    int     `json:"distinct_customers"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
}

type ProductCount struct {
	PID   int `gorm:"column:pid" json:"pid"`
	Count int `gorm:"column:cnt" json:"count"`
}

// WeeklySummary aggregates the seven days up to and including asOf.
func (r *GormRepo) WeeklySummary(ctx context.Context, asOf time.Time) (WeeklySummaryRow, error) {
	start := asOf.AddDate(0, 0, -7)

	var row WeeklySummaryRow
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT o.ono)  AS distinct_orders,
			COUNT(DISTINCT ol.pid) AS distinct_products_sold,
			COUNT(DISTINCT o.cid)  AS distinct_customers,
			COALESCE(SUM(ol.qty * ol.uprice), 0) AS total_sales_amount
		FROM orders o
		JOIN orderlines ol ON ol.ono = o.ono
		WHERE o.odate >= ? AND o.odate <= ?`,
		start, asOf,
	).Scan(&row).Error
	return row, err
}

// ProductsByOrderCount ranks products by the number of distinct orders they
// appear in, highest first, pid as tiebreak.
func (r *GormRepo) ProductsByOrderCount(ctx context.Context) ([]ProductCount, error) {
	var rows []ProductCount
	err := r.DB.WithContext(ctx).Model(&models.OrderLine{}).
		Select("pid, COUNT(DISTINCT ono) AS cnt").
		Group("pid").
		Order("cnt DESC, pid").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductsByViewCount ranks products by recorded detail views.
func (r *GormRepo) ProductsByViewCount(ctx context.Context) ([]ProductCount, error) {
	var rows []ProductCount
	err := r.DB.WithContext(ctx).Model(&models.ProductView{}).
		Select("pid, COUNT(*) AS cnt").
		Group("pid").
		Order("cnt DESC, pid").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
