package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Parties() PartyRepository
	Products() ProductRepository
	Stock() StockRepository
	Sales() SaleRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全操作をロールバックする
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
