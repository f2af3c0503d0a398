package repository

import (
	"context"

	"github.com/asa131211/sanchez-park/internal/model"

	"gorm.io/gorm"
)

type ShortcutRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.Shortcut, error)
	// Replace swaps all bindings of one user atomically.
	Replace(ctx context.Context, userID uint, shortcuts []model.Shortcut) error
	Delete(ctx context.Context, userID uint, key string) error
}

type shortcutRepo struct{ db *gorm.DB }

func NewShortcutRepository(db *gorm.DB) ShortcutRepository { return &shortcutRepo{db: db} }

func (r *shortcutRepo) ListByUser(ctx context.Context, userID uint) ([]model.Shortcut, error) {
	var shortcuts []model.Shortcut
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Product").
		Order("key ASC").
		Find(&shortcuts).Error
	return shortcuts, err
}

func (r *shortcutRepo) Replace(ctx context.Context, userID uint, shortcuts []model.Shortcut) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Shortcut{}).Error; err != nil {
			return err
		}
		if len(shortcuts) == 0 {
			return nil
		}
		return tx.Create(&shortcuts).Error
	})
}

func (r *shortcutRepo) Delete(ctx context.Context, userID uint, key string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&model.Shortcut{}).Error
}
