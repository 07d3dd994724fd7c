package repository

import (
	"context"

	"checkout/internal/domain/model"
)

// 注文集約の永続化だけを約束
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	// 既存明細だけを更新する（追加/削除はしない）
	Update(ctx context.Context, order model.Order) error
	Find(ctx context.Context, id string) (model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)

	// 明細を入力どおりに揃える（削除・追加・更新）
	Reconcile(ctx context.Context, order model.Order) error
}
