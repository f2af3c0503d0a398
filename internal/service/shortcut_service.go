package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/model"
	"github.com/asa131211/sanchez-park/internal/repository"
)

var ErrDuplicateShortcutKey = errors.New("tecla de atajo duplicada")

// ShortcutService manages per-user keyboard bindings for the sales screen.
// Bindings are structured rows validated on write — the legacy "key:id:name"
// string format is not accepted.
type ShortcutService interface {
	List(ctx context.Context, userID uint) ([]dto.ShortcutResponse, error)
	Replace(ctx context.Context, userID uint, req dto.ReplaceShortcutsRequest) ([]dto.ShortcutResponse, error)
	Delete(ctx context.Context, userID uint, key string) error
}

type shortcutService struct {
	repo     repository.ShortcutRepository
	products repository.ProductRepository
}

func NewShortcutService(repo repository.ShortcutRepository, products repository.ProductRepository) ShortcutService {
	return &shortcutService{repo: repo, products: products}
}

func (s *shortcutService) List(ctx context.Context, userID uint) ([]dto.ShortcutResponse, error) {
	shortcuts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return shortcutsToResponse(shortcuts), nil
}

func (s *shortcutService) Replace(ctx context.Context, userID uint, req dto.ReplaceShortcutsRequest) ([]dto.ShortcutResponse, error) {
	seen := map[string]bool{}
	rows := make([]model.Shortcut, 0, len(req.Shortcuts))
	for _, b := range req.Shortcuts {
		key := strings.ToLower(b.Key)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateShortcutKey, key)
		}
		seen[key] = true

		if p, err := s.products.FindByID(ctx, b.ProductID); err != nil || !p.Active {
			return nil, fmt.Errorf("atajo %q: %w", key, ErrProductNotFound)
		}
		rows = append(rows, model.Shortcut{
			UserID:    userID,
			Key:       key,
			ProductID: b.ProductID,
		})
	}

	if err := s.repo.Replace(ctx, userID, rows); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}

func (s *shortcutService) Delete(ctx context.Context, userID uint, key string) error {
	return s.repo.Delete(ctx, userID, strings.ToLower(key))
}

func shortcutsToResponse(shortcuts []model.Shortcut) []dto.ShortcutResponse {
	resp := make([]dto.ShortcutResponse, 0, len(shortcuts))
	for _, sc := range shortcuts {
		name := ""
		if sc.Product != nil {
			name = sc.Product.Name
		}
		resp = append(resp, dto.ShortcutResponse{
			Key:         sc.Key,
			ProductID:   sc.ProductID,
			ProductName: name,
		})
	}
	return resp
}
