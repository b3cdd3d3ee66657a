package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	parties  repo.PartyRepository
	products repo.ProductRepository
	stock    repo.StockRepository
	sales    repo.SaleRepository
}

func (r *txReposGorm) Parties() repo.PartyRepository    { return r.parties }
func (r *txReposGorm) Products() repo.ProductRepository { return r.products }
func (r *txReposGorm) Stock() repo.StockRepository      { return r.stock }
func (r *txReposGorm) Sales() repo.SaleRepository       { return r.sales }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			parties:  NewPartyGormRepository(tx),
			products: NewProductGormRepository(tx),
			stock:    NewStockGormRepository(tx),
			sales:    NewSaleGormRepository(tx),
		}
		return fn(r)
	})
}
