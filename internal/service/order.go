package service

import (
	"context"

	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/repo"
	"github.com/Skotchmaster/retail_shop/internal/util"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) ListOrders(ctx context.Context, cid, page, pageSize int) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = util.DefaultPageSize
	}
	return s.Repo.ListOrders(ctx, cid, page, pageSize)
}

// GetOrderDetail degrades to nil for an unknown order number.
func (s *OrderService) GetOrderDetail(ctx context.Context, ono int) (*models.Order, []models.OrderLine, error) {
	return s.Repo.GetOrderDetail(ctx, ono)
}

// ComputeOrderTotal returns 0 for an unknown order number, not an error.
func (s *OrderService) ComputeOrderTotal(ctx context.Context, ono int) (float64, error) {
	return s.Repo.OrderTotal(ctx, ono)
}
