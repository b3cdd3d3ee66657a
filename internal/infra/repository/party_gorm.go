package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartyGormRepository struct {
	db *gorm.DB
}

func NewPartyGormRepository(db *gorm.DB) *PartyGormRepository {
	return &PartyGormRepository{db: db}
}

// 非活性も含めて1件取得（活性判定はusecase側）
func (r *PartyGormRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Party, error) {
	var p model.Party
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Party{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Party{}, err
	}
	return p, nil
}

func (r *PartyGormRepository) ListByProfile(ctx context.Context, profile *model.PartyProfile) ([]model.Party, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if profile != nil {
		q = q.Where("profile = ?", *profile)
	}

	var items []model.Party
	if err := q.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PartyGormRepository) ExistsActiveByDocument(ctx context.Context, document string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Party{}).
		Where("document = ? AND is_active = ?", document, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PartyGormRepository) Create(ctx context.Context, p model.Party) error {
	return r.db.WithContext(ctx).Create(&p).Error
}
