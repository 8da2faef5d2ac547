package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/repo"
)

// CartService is the stock-bounded cart ledger. Quantities are totals per
// (customer, product) across sessions; sessionNo tags provenance only.
type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) AddQuantity(ctx context.Context, cid, sessionNo, pid, delta int) error {
	return s.Repo.AddCartQuantity(ctx, cid, sessionNo, pid, delta)
}

// SetQuantity rejects negative quantities; everything else is capped or
// deleted, never raised. The asymmetry with TrySetQuantityIfInStock is
// deliberate and callers depend on it.
func (s *CartService) SetQuantity(ctx context.Context, cid, sessionNo, pid, qty int) error {
	if qty < 0 {
		return fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}
	return s.Repo.SetCartQuantity(ctx, cid, sessionNo, pid, qty)
}

func (s *CartService) TrySetQuantityIfInStock(ctx context.Context, cid, sessionNo, pid, qty int) (bool, error) {
	return s.Repo.TrySetCartQuantity(ctx, cid, sessionNo, pid, qty)
}

func (s *CartService) Remove(ctx context.Context, cid, pid int) error {
	return s.Repo.RemoveFromCart(ctx, cid, pid)
}

func (s *CartService) Clear(ctx context.Context, cid int) error {
	return s.Repo.ClearCart(ctx, cid)
}

func (s *CartService) List(ctx context.Context, cid int) ([]models.CartItem, error) {
	return s.Repo.ListCart(ctx, cid)
}

func (s *CartService) Checkout(ctx context.Context, cid, sessionNo int, shippingAddress string, odate time.Time) (int, error) {
	return s.Repo.Checkout(ctx, cid, sessionNo, shippingAddress, odate)
}
