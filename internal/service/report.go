package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/retail_shop/internal/repo"
	"github.com/Skotchmaster/retail_shop/internal/util"
)

type ReportService struct {
	Repo *repo.GormRepo
}

type WeeklySummary struct {
	DistinctOrders       int     `json:"distinct_orders"`
	DistinctProductsSold int     `json:"distinct_products_sold"`
	DistinctCustomers    int     `json:"distinct_customers"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
	AvgAmountPerCustomer float64 `json:"avg_amount_per_customer"`
}

func (s *ReportService) WeeklySummary(ctx context.Context, asOf time.Time) (WeeklySummary, error) {
	row, err := s.Repo.WeeklySummary(ctx, asOf)
	if err != nil {
		return WeeklySummary{}, err
	}

	summary := WeeklySummary{
		DistinctOrders:       row.DistinctOrders,
		DistinctProductsSold: row.DistinctProductsSold,
		DistinctCustomers:    row.DistinctCustomers,
		TotalSalesAmount:     row.TotalSalesAmount,
	}
	if row.DistinctCustomers > 0 {
		summary.AvgAmountPerCustomer = row.TotalSalesAmount / float64(row.DistinctCustomers)
	}
	return summary, nil
}

// trimTopK keeps the first k entries; with includeTies every entry matching
// the count at rank k stays in.
func trimTopK(rows []repo.ProductCount, k int, includeTies bool) []repo.ProductCount {
	if !includeTies {
		if k < 0 {
			k = 0
		}
		if k < len(rows) {
			rows = rows[:k]
		}
		return rows
	}

	if k < 1 || len(rows) == 0 {
		return nil
	}
	i := k
	if i > len(rows) {
		i = len(rows)
	}
	threshold := rows[i-1].Count
	out := make([]repo.ProductCount, 0, len(rows))
	for _, r := range rows {
		if r.Count >= threshold {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReportService) TopProductsByOrders(ctx context.Context, k int, includeTies bool) ([]repo.ProductCount, error) {
	rows, err := s.Repo.ProductsByOrderCount(ctx)
	if err != nil {
		return nil, err
	}
	return trimTopK(rows, k, includeTies), nil
}

func (s *ReportService) TopProductsByViews(ctx context.Context, k int, includeTies bool) ([]repo.ProductCount, error) {
	rows, err := s.Repo.ProductsByViewCount(ctx)
	if err != nil {
		return nil, err
	}
	return trimTopK(rows, k, includeTies), nil
}

// RenderWeeklyMarkdown formats the weekly summary as a markdown table for
// the sales screen.
func (s *ReportService) RenderWeeklyMarkdown(ctx context.Context, asOf time.Time) (string, error) {
	summary, err := s.WeeklySummary(ctx, asOf)
	if err != nil {
		return "", err
	}

	rows := [][]string{
		{"Distinct orders", fmt.Sprintf("%d", summary.DistinctOrders)},
		{"Distinct products sold", fmt.Sprintf("%d", summary.DistinctProductsSold)},
		{"Distinct customers", fmt.Sprintf("%d", summary.DistinctCustomers)},
		{"Total sales amount", fmt.Sprintf("%.2f", summary.TotalSalesAmount)},
		{"Avg amount per customer", fmt.Sprintf("%.2f", summary.AvgAmountPerCustomer)},
	}
	return util.MarkdownTable([]string{"Metric", "Value"}, rows, []string{"l", "r"})
}
