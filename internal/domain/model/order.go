package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrder = errors.New("invalid order")
	ErrItemNotFound = errors.New("order item not found")
)

// Order は注文集約。合計は明細から計算する（保存値は参照しない）
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
}

func NewOrder(id, customerID string, items []OrderItem) (Order, error) {
	o := Order{
		ID:         id,
		CustomerID: customerID,
		Items:      items,
	}
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidOrder)
	}
	if strings.TrimSpace(o.CustomerID) == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidOrder)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: items are required", ErrInvalidOrder)
	}

	seen := make(map[string]struct{}, len(o.Items))
	for _, it := range o.Items {
		if err := it.Validate(); err != nil {
			return err
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: duplicate item id %s", ErrInvalidOrder, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (o Order) Item(id string) (OrderItem, bool) {
	for _, it := range o.Items {
		if it.ID == id {
			return it, true
		}
	}
	return OrderItem{}, false
}

// ChangeItem は既存明細の名前/単価/数量を変える。IDと商品は変えない
func (o *Order) ChangeItem(id, name string, price decimal.Decimal, quantity int) error {
	for i := range o.Items {
		if o.Items[i].ID != id {
			continue
		}
		changed := o.Items[i]
		changed.Name = name
		changed.Price = price
		changed.Quantity = quantity
		if err := changed.Validate(); err != nil {
			return err
		}
		o.Items[i] = changed
		return nil
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// ReplaceItems は明細を丸ごと入れ替える。空にはできない
func (o *Order) ReplaceItems(items []OrderItem) error {
	next := Order{ID: o.ID, CustomerID: o.CustomerID, Items: items}
	if err := next.Validate(); err != nil {
		return err
	}
	o.Items = items
	return nil
}
