package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

// cartTotal sums the customer's quantity for a product across whatever rows
// exist. The unique index keeps it to one row, but summing makes the read
// robust if the invariant is ever violated.
func cartTotal(tx *gorm.DB, cid, pid int) (int, error) {
	var total int64
	err := tx.Model(&models.CartItem{}).
		Select("COALESCE(SUM(qty), 0)").
		Where("cid = ? AND pid = ?", cid, pid).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// upsertCartItem consolidates the (cid, pid) pair into a single row in
// place, with no window where the pair has zero rows.
func upsertCartItem(tx *gorm.DB, item *models.CartItem) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cid"}, {Name: "pid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"qty":        item.Qty,
			"session_no": item.SessionNo,
		}),
	}).Create(item).Error
}

func deleteCartItem(tx *gorm.DB, cid, pid int) error {
	return tx.Where("cid = ? AND pid = ?", cid, pid).Delete(&models.CartItem{}).Error
}

// AddCartQuantity adds delta to the customer's total for pid, capping the
// result at current stock. A non-positive delta or an out-of-stock product
// is a no-op.
func (r *GormRepo) AddCartQuantity(ctx context.Context, cid, sessionNo, pid, delta int) error {
	if delta <= 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stock, err := stockCount(tx, pid)
		if err != nil {
			return err
		}
		if stock <= 0 {
			return nil
		}

		cur, err := cartTotal(tx, cid, pid)
		if err != nil {
			return err
		}
		total := cur + delta
		if total > stock {
			total = stock
		}

		return upsertCartItem(tx, &models.CartItem{CID: cid, SessionNo: sessionNo, PID: pid, Qty: total})
	})
}

// SetCartQuantity replaces the customer's total for pid, silently capping at
// stock. qty 0 removes the row; a cap down to 0 (gone or out-of-stock
// product) removes it too. Negative qty is rejected in the service layer.
func (r *GormRepo) SetCartQuantity(ctx context.Context, cid, sessionNo, pid, qty int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if qty == 0 {
			return deleteCartItem(tx, cid, pid)
		}

		stock, err := stockCount(tx, pid)
		if err != nil {
			return err
		}
		if qty > stock {
			qty = stock
		}
		if qty <= 0 {
			return deleteCartItem(tx, cid, pid)
		}

		return upsertCartItem(tx, &models.CartItem{CID: cid, SessionNo: sessionNo, PID: pid, Qty: qty})
	})
}

// TrySetCartQuantity is the strict variant: it never caps. It reports false
// without mutating anything when qty is negative or exceeds stock.
func (r *GormRepo) TrySetCartQuantity(ctx context.Context, cid, sessionNo, pid, qty int) (bool, error) {
	if qty < 0 {
		return false, nil
	}

	ok := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stock, err := stockCount(tx, pid)
		if err != nil {
			return err
		}
		if qty > stock {
			return nil
		}

		if qty == 0 {
			if err := deleteCartItem(tx, cid, pid); err != nil {
				return err
			}
		} else if err := upsertCartItem(tx, &models.CartItem{CID: cid, SessionNo: sessionNo, PID: pid, Qty: qty}); err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

func (r *GormRepo) RemoveFromCart(ctx context.Context, cid, pid int) error {
	return deleteCartItem(r.DB.WithContext(ctx), cid, pid)
}

func (r *GormRepo) ClearCart(ctx context.Context, cid int) error {
	return r.DB.WithContext(ctx).Where("cid = ?", cid).Delete(&models.CartItem{}).Error
}

// ListCart returns one aggregated entry per product in the customer's cart,
// ordered by pid.
func (r *GormRepo) ListCart(ctx context.Context, cid int) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Select("cid, pid, SUM(qty) AS qty").
		Where("cid = ?", cid).
		Group("cid, pid").
		Order("pid").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
