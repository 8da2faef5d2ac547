package repo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/retail_shop/internal/config"
	"github.com/Skotchmaster/retail_shop/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return NewGormRepo(db)
}

func seedProducts(t *testing.T, r *GormRepo) {
	t.Helper()

	products := []models.Product{
		{PID: 2001, Name: "wireless mouse", Category: "peripherals", Price: 25.50, StockCount: 10, Descr: "ergonomic wireless mouse"},
		{PID: 2002, Name: "mechanical keyboard", Category: "peripherals", Price: 89.99, StockCount: 5, Descr: "tactile switches"},
		{PID: 2003, Name: "usb hub", Category: "accessories", Price: 15.00, StockCount: 2, Descr: "4-port usb 3.0 hub"},
		{PID: 2004, Name: "keyboard wrist rest", Category: "accessories", Price: 12.00, StockCount: 7, Descr: "memory foam"},
		{PID: 2005, Name: "monitor stand 2003", Category: "accessories", Price: 30.00, StockCount: 0, Descr: "adjustable height"},
	}
	for i := range products {
		require.NoError(t, r.DB.Create(&products[i]).Error)
	}
}

func searchCount(t *testing.T, r *GormRepo) int64 {
	t.Helper()

	var n int64
	require.NoError(t, r.DB.Model(&models.SearchRecord{}).Count(&n).Error)
	return n
}

func cartRows(t *testing.T, r *GormRepo, cid, pid int) []models.CartItem {
	t.Helper()

	var rows []models.CartItem
	require.NoError(t, r.DB.Where("cid = ? AND pid = ?", cid, pid).Find(&rows).Error)
	return rows
}
