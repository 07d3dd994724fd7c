package repository

import (
	"context"
	"errors"

	"checkout/internal/domain/model"
	repo "checkout/internal/repository"

	"gorm.io/gorm"
)

// TxRunner は更新系で使うトランザクションの入口
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type OrderGormRepository struct {
	db *gorm.DB
	tx TxRunner
}

func NewOrderGormRepository(db *gorm.DB, tx TxRunner) *OrderGormRepository {
	return &OrderGormRepository{db: db, tx: tx}
}

// 注文と明細を同じTxでINSERTする
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if r.tx == nil {
		return repo.ErrTxUnavailable
	}

	row := toOrderModel(order)
	items := toOrderItemModels(order.ID, order.Items)

	return r.tx.RunInTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		//明細はassociationのupsertに任せず明示的に作る（重複はエラーにする）
		return tx.Create(&items).Error
	})
}

// 合計と既存明細（id + order_id 一致）のname/price/quantityを更新する。
// 入力にない明細は触らない。保存されていない明細は0件更新で無視される。
func (r *OrderGormRepository) Update(ctx context.Context, order model.Order) error {
	if r.tx == nil {
		return repo.ErrTxUnavailable
	}

	return r.tx.RunInTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&OrderModel{}).
			Where("id = ?", order.ID).
			Update("total", order.Total()).Error; err != nil {
			return err
		}

		for _, it := range order.Items {
			if _, err := updateItem(tx, order.ID, it); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderGormRepository) Find(ctx context.Context, id string) (model.Order, error) {
	var m OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return toDomainOrder(m), nil
}

// 並び順は指定しない（DBの返す順）
func (r *OrderGormRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	var rows []OrderModel
	if err := r.db.WithContext(ctx).Preload("Items").Find(&rows).Error; err != nil {
		return []model.Order{}, err
	}

	orders := make([]model.Order, 0, len(rows))
	for _, m := range rows {
		orders = append(orders, toDomainOrder(m))
	}
	return orders, nil
}

// Reconcile は保存済み明細を入力と一致させる。
// 入力にない行は削除、既存行は更新、新しい行は追加。
func (r *OrderGormRepository) Reconcile(ctx context.Context, order model.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if r.tx == nil {
		return repo.ErrTxUnavailable
	}

	return r.tx.RunInTx(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&OrderModel{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repo.ErrNotFound
		}

		if err := tx.Model(&OrderModel{}).
			Where("id = ?", order.ID).
			Update("total", order.Total()).Error; err != nil {
			return err
		}

		ids := make([]string, 0, len(order.Items))
		for _, it := range order.Items {
			ids = append(ids, it.ID)
		}
		if err := tx.Where("order_id = ? AND id NOT IN ?", order.ID, ids).
			Delete(&OrderItemModel{}).Error; err != nil {
			return err
		}

		for _, it := range order.Items {
			//RowsAffectedは「一致した行数」前提（postgres/sqlite）。変更行数だけ数えるDBでは未変更の明細がINSERTに落ちる
			updated, err := updateItem(tx, order.ID, it)
			if err != nil {
				return err
			}
			if updated {
				continue
			}
			row := toOrderItemModel(order.ID, it)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func updateItem(tx *gorm.DB, orderID string, it model.OrderItem) (bool, error) {
	res := tx.Model(&OrderItemModel{}).
		Where("id = ? AND order_id = ?", it.ID, orderID).
		Updates(map[string]interface{}{
			"name":     it.Name,
			"price":    it.Price,
			"quantity": it.Quantity,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
