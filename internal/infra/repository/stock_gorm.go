package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

func (r *StockGormRepository) FindLevelByProductID(ctx context.Context, productID uuid.UUID) (model.StockLevel, error) {
	var level model.StockLevel
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_active = ?", productID, true).
		First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StockLevel{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StockLevel{}, err
	}
	return level, nil
}

// 結果が負にならないときだけ加算する。
// WHERE句の条件はコミット済みの値に対して評価されるので、
// 同じ行を狙う並行トランザクションは行ロックで直列化される
func (r *StockGormRepository) ApplyDeltaIfEnough(ctx context.Context, productID uuid.UUID, delta int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.StockLevel{}).
		Where("product_id = ? AND is_active = ? AND quantity + ? >= 0", productID, true, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

func (r *StockGormRepository) CreateLevel(ctx context.Context, level model.StockLevel) error {
	return r.db.WithContext(ctx).Create(&level).Error
}

func (r *StockGormRepository) CreateMovement(ctx context.Context, m model.StockMovement) error {
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *StockGormRepository) ListMovementsByProductID(ctx context.Context, productID uuid.UUID) ([]model.StockMovement, error) {
	var items []model.StockMovement
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("occurred_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
