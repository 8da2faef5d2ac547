package repo

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

// freshOrderNumber picks a random order number and re-checks it against
// existing orders inside the running transaction. Numbers are sparse and
// never reused.
func freshOrderNumber(tx *gorm.DB) (int, error) {
	for {
		ono := rand.Intn(900000) + 100000
		var n int64
		if err := tx.Model(&models.Order{}).Where("ono = ?", ono).Count(&n).Error; err != nil {
			return 0, err
		}
		if n == 0 {
			return ono, nil
		}
	}
}

// Checkout converts the customer's cart into an order in one transaction:
// the header is inserted even for an empty cart, each line commits
// min(cartQty, stock) with a price snapshot and decrements stock, lines for
// vanished or zero-cap products are skipped without consuming a line
// number, and the whole cart is cleared at the end. Any failure rolls the
// entire unit back.
func (r *GormRepo) Checkout(ctx context.Context, cid, sessionNo int, shippingAddress string, odate time.Time) (int, error) {
	var ono int
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []struct {
			PID int `gorm:"column:pid"`
			Qty int
		}
		if err := tx.Model(&models.CartItem{}).
			Select("pid, SUM(qty) AS qty").
			Where("cid = ?", cid).
			Group("pid").
			Order("pid").
			Scan(&rows).Error; err != nil {
			return err
		}

		n, err := freshOrderNumber(tx)
		if err != nil {
			return err
		}
		ono = n

		order := models.Order{
			Ono:             ono,
			CID:             cid,
			SessionNo:       sessionNo,
			ODate:           odate,
			ShippingAddress: shippingAddress,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		lineNo := 1
		for _, row := range rows {
			var p models.Product
			if err := tx.Where("pid = ?", row.PID).First(&p).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			qty := row.Qty
			if qty > p.StockCount {
				qty = p.StockCount
			}
			if qty <= 0 {
				continue
			}

			line := models.OrderLine{
				Ono:    ono,
				LineNo: lineNo,
				PID:    p.PID,
				Qty:    qty,
				UPrice: p.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).
				Where("pid = ?", p.PID).
				Update("stock_count", gorm.Expr("stock_count - ?", qty)).Error; err != nil {
				return err
			}
			lineNo++
		}

		return tx.Where("cid = ?", cid).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return 0, err
	}
	return ono, nil
}

// OrderTotal returns 0 for an unknown order number or one with no lines.
func (r *GormRepo) OrderTotal(ctx context.Context, ono int) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&models.OrderLine{}).
		Select("COALESCE(SUM(qty * uprice), 0)").
		Where("ono = ?", ono).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, cid, page, pageSize int) ([]models.Order, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Where("cid = ?", cid).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * pageSize
	}
	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Where("cid = ?", cid).
		Order("odate DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetOrderDetail returns nil for an unknown order number.
func (r *GormRepo) GetOrderDetail(ctx context.Context, ono int) (*models.Order, []models.OrderLine, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Where("ono = ?", ono).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var lines []models.OrderLine
	if err := r.DB.WithContext(ctx).Where("ono = ?", ono).Order("line_no").Find(&lines).Error; err != nil {
		return nil, nil, err
	}
	return &order, lines, nil
}
