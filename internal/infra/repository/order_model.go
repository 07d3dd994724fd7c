package repository

import (
	"checkout/internal/domain/model"

	"github.com/shopspring/decimal"
)

// orders テーブルの行
type OrderModel struct {
	ID         string           `gorm:"primaryKey;type:varchar(255)"`
	CustomerID string           `gorm:"type:varchar(255);not null;index"`
	Total      decimal.Decimal  `gorm:"type:numeric;not null"`
	Items      []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderModel) TableName() string { return "orders" }

// order_items テーブルの行
type OrderItemModel struct {
	ID        string          `gorm:"primaryKey;type:varchar(255)"`
	OrderID   string          `gorm:"type:varchar(255);not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	ProductID string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderItemModel) TableName() string { return "order_items" }

// Models はAutoMigrate対象
func Models() []any {
	return []any{&OrderModel{}, &OrderItemModel{}}
}

// 集約 -> 行。合計は明細から計算して非正規化で持つ
func toOrderModel(o model.Order) OrderModel {
	return OrderModel{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total(),
	}
}

func toOrderItemModels(orderID string, items []model.OrderItem) []OrderItemModel {
	out := make([]OrderItemModel, 0, len(items))
	for _, it := range items {
		out = append(out, toOrderItemModel(orderID, it))
	}
	return out
}

func toOrderItemModel(orderID string, it model.OrderItem) OrderItemModel {
	return OrderItemModel{
		ID:        it.ID,
		OrderID:   orderID,
		Name:      it.Name,
		Price:     it.Price,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
	}
}

// 行 -> 集約
func toDomainOrder(m OrderModel) model.Order {
	items := make([]model.OrderItem, 0, len(m.Items))
	for _, im := range m.Items {
		items = append(items, model.OrderItem{
			ID:        im.ID,
			Name:      im.Name,
			Price:     im.Price,
			ProductID: im.ProductID,
			Quantity:  im.Quantity,
		})
	}
	return model.Order{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Items:      items,
	}
}
