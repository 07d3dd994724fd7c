package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderItem は注文明細。Orderが所有する
type OrderItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
}

func NewOrderItem(id, name string, price decimal.Decimal, productID string, quantity int) (OrderItem, error) {
	it := OrderItem{
		ID:        id,
		Name:      name,
		Price:     price,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := it.Validate(); err != nil {
		return OrderItem{}, err
	}
	return it, nil
}

func (it OrderItem) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return fmt.Errorf("%w: item id is required", ErrInvalidOrder)
	}
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidOrder)
	}
	if strings.TrimSpace(it.ProductID) == "" {
		return fmt.Errorf("%w: item product id is required", ErrInvalidOrder)
	}
	if it.Price.IsNegative() {
		return fmt.Errorf("%w: item price must not be negative", ErrInvalidOrder)
	}
	if it.Quantity <= 0 {
		return fmt.Errorf("%w: item quantity must be greater than zero", ErrInvalidOrder)
	}
	return nil
}

// 単価×数量
func (it OrderItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
