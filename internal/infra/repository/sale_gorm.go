package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) Create(ctx context.Context, s model.Sale) error {
	return r.db.WithContext(ctx).Create(&s).Error
}

func (r *SaleGormRepository) CreateLines(ctx context.Context, lines []model.SaleLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *SaleGormRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sale{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Sale{}, err
	}
	return s, nil
}

func (r *SaleGormRepository) ListLinesBySaleID(ctx context.Context, saleID uuid.UUID) ([]model.SaleLine, error) {
	var items []model.SaleLine
	err := r.db.WithContext(ctx).
		Where("sale_id = ? AND is_active = ?", saleID, true).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SaleGormRepository) List(ctx context.Context, f repo.SaleListFilter) ([]model.Sale, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)

	if f.PartyID != nil {
		q = q.Where("party_id = ?", *f.PartyID)
	}
	if f.Branch != nil {
		q = q.Where("branch = ?", *f.Branch)
	}
	if f.From != nil {
		q = q.Where("occurred_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("occurred_at <= ?", *f.To)
	}

	var items []model.Sale
	if err := q.Order("occurred_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
