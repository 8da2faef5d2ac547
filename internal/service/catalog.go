package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

// GetProduct returns nil for an unknown pid.
func (s *CatalogService) GetProduct(ctx context.Context, pid int) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, pid)
}

func (s *CatalogService) CreateProduct(ctx context.Context, prod *models.Product) error {
	if prod.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if prod.StockCount < 0 {
		return fmt.Errorf("stock must not be negative: %w", ErrValidation)
	}
	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) UpdatePriceStock(ctx context.Context, pid int, price *float64, stock *int) (bool, error) {
	if price != nil && *price < 0 {
		return false, fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if stock != nil && *stock < 0 {
		return false, fmt.Errorf("stock must not be negative: %w", ErrValidation)
	}
	return s.Repo.UpdateProductPriceStock(ctx, pid, price, stock)
}

func (s *CatalogService) RecordView(ctx context.Context, cid, sessionNo, pid int, ts time.Time) error {
	return s.Repo.RecordView(ctx, cid, sessionNo, pid, ts)
}
