package usecase

import (
	"context"
	"strings"

	"checkout/internal/domain/model"
	repo "checkout/internal/repository"

	"github.com/shopspring/decimal"
)

// IDGenerator は注文/明細IDを払い出す
type IDGenerator interface {
	NewID() string
}

type OrderUsecase struct {
	orders repo.OrderRepository
	tx     repo.TransactionManager
	ids    IDGenerator
}

func NewOrderUsecase(orders repo.OrderRepository, tx repo.TransactionManager, ids IDGenerator) *OrderUsecase {
	return &OrderUsecase{orders: orders, tx: tx, ids: ids}
}

type OrderItemInput struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
}

type PlaceOrderInput struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customer_id"`
	Items      []OrderItemInput `json:"items"`
}

type UpdateItemInput struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type UpdateOrderInput struct {
	Items []UpdateItemInput `json:"items"`
}

type ReplaceItemsInput struct {
	Items []OrderItemInput `json:"items"`
}

type OrderItemOutput struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
}

type OrderOutput struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	Total      decimal.Decimal   `json:"total"`
	Items      []OrderItemOutput `json:"items"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = u.ids.NewID()
	}

	items, err := u.buildItems(in.Items)
	if err != nil {
		return OrderOutput{}, toHTTPError(err)
	}

	order, err := model.NewOrder(id, strings.TrimSpace(in.CustomerID), items)
	if err != nil {
		return OrderOutput{}, toHTTPError(err)
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return OrderOutput{}, toHTTPError(err)
	}
	return toOrderOutput(order), nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, id string) (OrderOutput, error) {
	if strings.TrimSpace(id) == "" {
		return OrderOutput{}, toHTTPError(repo.ErrNotFound)
	}
	o, err := u.orders.Find(ctx, id)
	if err != nil {
		return OrderOutput{}, toHTTPError(err)
	}
	return toOrderOutput(o), nil
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return []OrderOutput{}, toHTTPError(err)
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return outs, nil
}

// UpdateOrder は既存明細の name/price/quantity を変える。明細の追加/削除は ReplaceItems
func (u *OrderUsecase) UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().Find(ctx, id)
		if err != nil {
			return err
		}

		for _, it := range in.Items {
			if err := o.ChangeItem(it.ID, strings.TrimSpace(it.Name), it.Price, it.Quantity); err != nil {
				return err
			}
		}

		if err := r.Orders().Update(ctx, o); err != nil {
			return err
		}
		out = toOrderOutput(o)
		return nil
	})
	if err != nil {
		return OrderOutput{}, toHTTPError(err)
	}
	return out, nil
}

// ReplaceItems は明細を入力どおりにする（ないものは削除、新しいものは追加）
func (u *OrderUsecase) ReplaceItems(ctx context.Context, id string, in ReplaceItemsInput) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().Find(ctx, id)
		if err != nil {
			return err
		}

		items, err := u.buildItems(in.Items)
		if err != nil {
			return err
		}
		if err := o.ReplaceItems(items); err != nil {
			return err
		}

		if err := r.Orders().Reconcile(ctx, o); err != nil {
			return err
		}
		out = toOrderOutput(o)
		return nil
	})
	if err != nil {
		return OrderOutput{}, toHTTPError(err)
	}
	return out, nil
}

// IDがない明細は採番する
func (u *OrderUsecase) buildItems(in []OrderItemInput) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(in))
	for _, it := range in {
		itemID := strings.TrimSpace(it.ID)
		if itemID == "" {
			itemID = u.ids.NewID()
		}
		item, err := model.NewOrderItem(itemID, strings.TrimSpace(it.Name), it.Price, strings.TrimSpace(it.ProductID), it.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		outItems = append(outItems, OrderItemOutput{
			ID:        it.ID,
			Name:      it.Name,
			Price:     it.Price,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total(),
		Items:      outItems,
	}
}
