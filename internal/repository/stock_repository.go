package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/google/uuid"
)

// 在庫カウンタと移動履歴の永続化をまとめた約束。
// カウンタの変更は必ずトランザクション内でLedger経由
type StockRepository interface {
	// 商品の活性なStockLevel行。無ければErrNotFound
	FindLevelByProductID(ctx context.Context, productID uuid.UUID) (model.StockLevel, error)

	// 結果が負にならないときだけ符号付きdeltaを加算
	ApplyDeltaIfEnough(ctx context.Context, productID uuid.UUID, delta int64) (bool, error)

	CreateLevel(ctx context.Context, level model.StockLevel) error

	// 移動履歴作成（カウンタ変更と同一トランザクションで呼ぶ）
	CreateMovement(ctx context.Context, m model.StockMovement) error

	// 移動履歴を新しい順で
	ListMovementsByProductID(ctx context.Context, productID uuid.UUID) ([]model.StockMovement, error)
}
