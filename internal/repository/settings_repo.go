package repository

import (
	"context"
	"errors"

	"github.com/asa131211/sanchez-park/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Get returns the singleton row, creating it with defaults on first read.
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, s *model.Settings) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).First(&s, model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = model.Settings{ID: model.SettingsID}
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	return &s, err
}

func (r *settingsRepo) Update(ctx context.Context, s *model.Settings) error {
	s.ID = model.SettingsID
	return r.db.WithContext(ctx).Save(s).Error
}
