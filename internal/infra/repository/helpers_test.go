package repository

import (
	"testing"

	"checkout/internal/domain/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB はテストごとにin-memory SQLiteを作る
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	//:memory: は接続ごとに別DBなので1本に固定
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(Models()...))
	return gdb
}

func newTestRepo(t *testing.T) (*OrderGormRepository, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return NewOrderGormRepository(gdb, NewTxManagerGorm(gdb)), gdb
}

func item(id, name, price, productID string, qty int) model.OrderItem {
	return model.OrderItem{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		ProductID: productID,
		Quantity:  qty,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s got %s", want, got)
}

func storedTotal(t *testing.T, gdb *gorm.DB, orderID string) decimal.Decimal {
	t.Helper()
	var row OrderModel
	require.NoError(t, gdb.First(&row, "id = ?", orderID).Error)
	return row.Total
}

func storedItems(t *testing.T, gdb *gorm.DB, orderID string) []OrderItemModel {
	t.Helper()
	var rows []OrderItemModel
	require.NoError(t, gdb.Where("order_id = ?", orderID).Order("id asc").Find(&rows).Error)
	return rows
}
