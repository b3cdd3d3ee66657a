package repository

import (
	"context"
	"time"

	"app/internal/domain/model"

	"github.com/google/uuid"
)

// 一覧検索
type SaleListFilter struct {
	PartyID *uuid.UUID
	Branch  *string
	From    *time.Time
	To      *time.Time
}

type SaleRepository interface {
	Create(ctx context.Context, s model.Sale) error
	CreateLines(ctx context.Context, lines []model.SaleLine) error

	FindByID(ctx context.Context, id uuid.UUID) (model.Sale, error)
	ListLinesBySaleID(ctx context.Context, saleID uuid.UUID) ([]model.SaleLine, error)

	// 新しい順
	List(ctx context.Context, f SaleListFilter) ([]model.Sale, error)
}
