package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/google/uuid"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 活性な商品のみ。非活性・不存在はErrNotFound
	FindActiveByID(ctx context.Context, id uuid.UUID) (model.Product, error)

	// 非活性も含めて1件取得（過去の販売明細の表示用）
	FindByID(ctx context.Context, id uuid.UUID) (model.Product, error)

	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)

	// 活性な商品を名前順で
	ListActive(ctx context.Context) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) error
}
