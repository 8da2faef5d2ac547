package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

// GetProduct returns nil for an unknown pid, not an error.
func (r *GormRepo) GetProduct(ctx context.Context, pid int) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("pid = ?", pid).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) ProductExists(ctx context.Context, pid int) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Where("pid = ?", pid).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ProductStock reports the current stock for pid; ok is false when the
// product does not exist.
func (r *GormRepo) ProductStock(ctx context.Context, pid int) (stock int, ok bool, err error) {
	p, err := r.GetProduct(ctx, pid)
	if err != nil {
		return 0, false, err
	}
	if p == nil {
		return 0, false, nil
	}
	return p.StockCount, true, nil
}

// UpdateProductPriceStock updates only the provided fields. It reports
// false when neither field is given or no such product exists.
func (r *GormRepo) UpdateProductPriceStock(ctx context.Context, pid int, price *float64, stock *int) (bool, error) {
	if price == nil && stock == nil {
		return false, nil
	}

	updated := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prod models.Product
		if err := tx.Where("pid = ?", pid).First(&prod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if price != nil {
			prod.Price = *price
		}
		if stock != nil {
			prod.StockCount = *stock
		}
		if err := tx.Save(&prod).Error; err != nil {
			return err
		}
		updated = true
		return nil
	})
	return updated, err
}

// stockCount is the in-transaction read used by cart writes; a missing
// product reads as zero stock.
func stockCount(tx *gorm.DB, pid int) (int, error) {
	var prod models.Product
	if err := tx.Where("pid = ?", pid).First(&prod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return prod.StockCount, nil
}
