package usecase

import (
	"context"
	"fmt"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

// 在庫カウンタと監査ログを所有するコンポーネント。
// カウンタの変更は必ずここを通す（直接UPDATE禁止）
type StockLedger struct {
	tx    repo.TransactionManager
	stock repo.StockRepository
}

func NewStockLedger(tx repo.TransactionManager, stock repo.StockRepository) *StockLedger {
	return &StockLedger{tx: tx, stock: stock}
}

type ApplyDeltaInput struct {
	ProductID uuid.UUID
	Kind      model.MovementKind
	Quantity  int64
	PartyID   uuid.UUID
	Note      *string
}

// 現在の利用可能数量。StockLevel行が無ければNotFound
func (l *StockLedger) GetAvailable(ctx context.Context, productID uuid.UUID) (int64, error) {
	level, err := l.stock.FindLevelByProductID(ctx, productID)
	if err == repo.ErrNotFound {
		return 0, errNotFound(fmt.Sprintf("no stock level for product %s", productID))
	}
	if err != nil {
		return 0, errDB()
	}
	return level.Quantity, nil
}

// 参考値の読み取り。後続の書き込みとは原子的でないため、
// 書き込み側はApplyDelta内で必ず再検証する
func (l *StockLedger) HasSufficient(ctx context.Context, productID uuid.UUID, required int64) (bool, error) {
	available, err := l.GetAvailable(ctx, productID)
	if err != nil {
		return false, err
	}
	return available >= required, nil
}

// 在庫の加減算と監査レコード作成を1トランザクションで行う
func (l *StockLedger) ApplyDelta(ctx context.Context, in ApplyDeltaInput) (uuid.UUID, error) {
	var movementID uuid.UUID

	err := l.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := l.ApplyDeltaIn(ctx, r, in)
		if err != nil {
			return err
		}
		movementID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return movementID, nil
}

// ApplyDeltaIn は呼び出し側のトランザクション内で実行する本体。
// 販売処理が自分のTxから明細ごとに呼ぶのもここ
func (l *StockLedger) ApplyDeltaIn(ctx context.Context, r repo.TxRepos, in ApplyDeltaInput) (uuid.UUID, error) {
	// Tx内で再読み取り（存在確認と、拒否時の正確なメッセージ用）
	level, err := r.Stock().FindLevelByProductID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return uuid.Nil, errNotFound(fmt.Sprintf("no stock level for product %s", in.ProductID))
	}
	if err != nil {
		return uuid.Nil, errDB()
	}

	delta := in.Kind.Delta(in.Quantity)

	// 負にならないときだけ加算。0行更新 = 並行コミット後の再評価で不足
	ok, err := r.Stock().ApplyDeltaIfEnough(ctx, in.ProductID, delta)
	if err != nil {
		return uuid.Nil, errDB()
	}
	if !ok {
		return uuid.Nil, errInsufficientStock(fmt.Sprintf(
			"insufficient stock: available %d, requested change %d", level.Quantity, delta))
	}

	m := model.StockMovement{
		ID:         uuid.New(),
		ProductID:  in.ProductID,
		Kind:       in.Kind,
		OccurredAt: time.Now(),
		PartyID:    in.PartyID,
		Quantity:   in.Quantity,
		Note:       in.Note,
		IsActive:   true,
	}
	if err := r.Stock().CreateMovement(ctx, m); err != nil {
		return uuid.Nil, errDB()
	}

	return m.ID, nil
}

// ProvisionInitialIn は新規商品のStockLevelを同一トランザクション内で開設する。
// 既存行の再読み取りが無い点だけApplyDeltaと異なる
func (l *StockLedger) ProvisionInitialIn(ctx context.Context, r repo.TxRepos, productID uuid.UUID, partyID uuid.UUID, initialQuantity int64) error {
	level := model.StockLevel{
		ID:        uuid.New(),
		ProductID: productID,
		PartyID:   partyID,
		Quantity:  initialQuantity,
		IsActive:  true,
	}
	if err := r.Stock().CreateLevel(ctx, level); err != nil {
		return errDB()
	}

	if initialQuantity > 0 {
		note := "initial stock"
		m := model.StockMovement{
			ID:         uuid.New(),
			ProductID:  productID,
			Kind:       model.MovementInbound,
			OccurredAt: time.Now(),
			PartyID:    partyID,
			Quantity:   initialQuantity,
			Note:       &note,
			IsActive:   true,
		}
		if err := r.Stock().CreateMovement(ctx, m); err != nil {
			return errDB()
		}
	}

	return nil
}
