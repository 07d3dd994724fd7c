package repository

import (
	"context"

	repo "checkout/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders repo.OrderRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// RunInTx はfnをひとつのTxで実行する。Tx中のDBで呼ぶとSAVEPOINTになる
func (tm *TxManagerGorm) RunInTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	//typed nil の *TxManagerGorm でも書き込み前に止める
	if tm == nil || tm.db == nil {
		return repo.ErrTxUnavailable
	}
	return tm.db.WithContext(ctx).Transaction(fn)
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.RunInTx(ctx, func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders: NewOrderGormRepository(tx, NewTxManagerGorm(tx)),
		}
		return fn(r)
	})
}
