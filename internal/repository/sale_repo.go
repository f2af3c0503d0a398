package repository

import (
	"context"
	"time"

	"github.com/asa131211/sanchez-park/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	// Create persists the sale and its item snapshots in a single transaction:
	// either the whole record lands or nothing does.
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id uint) (*model.Sale, error)
	ListByRange(ctx context.Context, from, to time.Time, userID *uint) ([]model.Sale, error)
	ListByCashBox(ctx context.Context, cashBoxID uint) ([]model.Sale, error)
	Page(ctx context.Context, page, limit int) ([]model.Sale, int64, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").Preload("User").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) ListByRange(ctx context.Context, from, to time.Time, userID *uint) ([]model.Sale, error) {
	var sales []model.Sale
	q := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	err := q.Preload("Items").Preload("User").
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListByCashBox(ctx context.Context, cashBoxID uint) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Where("cash_box_id = ?", cashBoxID).
		Preload("Items").
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Page(ctx context.Context, page, limit int) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Items").Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&sales).Error
	return sales, total, err
}
