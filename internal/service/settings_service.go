package service

import (
	"context"
	"time"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/repository"
)

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	// TouchSync records the connectivity flag's last successful sync time.
	TouchSync(ctx context.Context) error
}

type settingsService struct {
	repo repository.SettingsRepository
	now  func() time.Time
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo, now: time.Now}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.SettingsResponse{
		DarkMode:    cfg.DarkMode,
		CompanyName: cfg.CompanyName,
		CompanyLogo: cfg.CompanyLogo,
	}
	if cfg.LastSyncAt != nil {
		t := cfg.LastSyncAt.Format(time.RFC3339)
		resp.LastSyncAt = &t
	}
	return resp, nil
}

func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.DarkMode != nil {
		cfg.DarkMode = *req.DarkMode
	}
	if req.CompanyName != nil {
		cfg.CompanyName = *req.CompanyName
	}
	if req.CompanyLogo != nil {
		cfg.CompanyLogo = req.CompanyLogo
	}
	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return s.Get(ctx)
}

func (s *settingsService) TouchSync(ctx context.Context) error {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	t := s.now()
	cfg.LastSyncAt = &t
	return s.repo.Update(ctx, cfg)
}
