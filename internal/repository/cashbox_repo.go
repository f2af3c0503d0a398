package repository

import (
	"context"

	"github.com/asa131211/sanchez-park/internal/model"

	"gorm.io/gorm"
)

type CashBoxRepository interface {
	Create(ctx context.Context, b *model.CashBox) error
	FindByID(ctx context.Context, id uint) (*model.CashBox, error)
	FindOpenByUser(ctx context.Context, userID uint) (*model.CashBox, error)
	Update(ctx context.Context, b *model.CashBox) error
	History(ctx context.Context, page, limit int) ([]model.CashBox, int64, error)
}

type cashBoxRepo struct{ db *gorm.DB }

func NewCashBoxRepository(db *gorm.DB) CashBoxRepository { return &cashBoxRepo{db: db} }

func (r *cashBoxRepo) Create(ctx context.Context, b *model.CashBox) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *cashBoxRepo) FindByID(ctx context.Context, id uint) (*model.CashBox, error) {
	var b model.CashBox
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *cashBoxRepo) FindOpenByUser(ctx context.Context, userID uint) (*model.CashBox, error) {
	var b model.CashBox
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_open = true", userID).
		Order("opened_at DESC").
		First(&b).Error
	return &b, err
}

func (r *cashBoxRepo) Update(ctx context.Context, b *model.CashBox) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *cashBoxRepo) History(ctx context.Context, page, limit int) ([]model.CashBox, int64, error) {
	var boxes []model.CashBox
	var total int64

	q := r.db.WithContext(ctx).Model(&model.CashBox{}).Where("is_open = false")
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("opened_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&boxes).Error
	return boxes, total, err
}
