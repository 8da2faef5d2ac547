package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/retail_shop/internal/config"
	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	products := []models.Product{
		{PID: 1, Name: "notebook", Category: "stationery", Price: 3.50, StockCount: 2},
		{PID: 2, Name: "fountain pen", Category: "stationery", Price: 42.00, StockCount: 6, Descr: "fine nib"},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	return repo.NewGormRepo(db)
}
