package service

import (
	"context"
	"errors"
	"time"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/model"
	"github.com/asa131211/sanchez-park/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCashBoxAlreadyOpen = errors.New("Ya existe una caja abierta para este usuario")
	ErrCashBoxNotFound    = errors.New("Sesión de caja no encontrada")
)

// CashBoxService owns the register lifecycle: a box is created open, closed
// exactly once, and never reopened. At most one open box exists per user.
type CashBoxService interface {
	Open(ctx context.Context, userID uint) (*dto.CashBoxResponse, error)
	// Close is idempotent: closing an already-closed box returns it unchanged.
	Close(ctx context.Context, boxID uint) (*dto.CashBoxResponse, error)
	// Active returns the user's open box, or nil when none is open.
	Active(ctx context.Context, userID uint) (*dto.CashBoxResponse, error)
	History(ctx context.Context, page, limit int) (*dto.CashBoxHistoryResponse, error)

	// FindOpen is called by SaleService to gate checkout on an open register.
	FindOpen(ctx context.Context, userID uint) (*model.CashBox, error)
}

type cashBoxService struct {
	repo repository.CashBoxRepository
	now  func() time.Time
}

func NewCashBoxService(repo repository.CashBoxRepository) CashBoxService {
	return &cashBoxService{repo: repo, now: time.Now}
}

func (s *cashBoxService) Open(ctx context.Context, userID uint) (*dto.CashBoxResponse, error) {
	existing, err := s.repo.FindOpenByUser(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, ErrCashBoxAlreadyOpen
	}

	box := &model.CashBox{
		UserID:   userID,
		OpenedAt: s.now(),
		IsOpen:   true,
	}
	if err := s.repo.Create(ctx, box); err != nil {
		return nil, err
	}
	return boxToResponse(box), nil
}

func (s *cashBoxService) Close(ctx context.Context, boxID uint) (*dto.CashBoxResponse, error) {
	box, err := s.repo.FindByID(ctx, boxID)
	if err != nil {
		return nil, ErrCashBoxNotFound
	}
	if !box.IsOpen {
		// Already closed — terminal state, nothing to do.
		return boxToResponse(box), nil
	}

	closedAt := s.now()
	box.ClosedAt = &closedAt
	box.IsOpen = false
	if err := s.repo.Update(ctx, box); err != nil {
		return nil, err
	}
	return boxToResponse(box), nil
}

func (s *cashBoxService) Active(ctx context.Context, userID uint) (*dto.CashBoxResponse, error) {
	box, err := s.repo.FindOpenByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return boxToResponse(box), nil
}

func (s *cashBoxService) History(ctx context.Context, page, limit int) (*dto.CashBoxHistoryResponse, error) {
	boxes, total, err := s.repo.History(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.CashBoxHistoryResponse{
		Data:  make([]dto.CashBoxResponse, 0, len(boxes)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for i := range boxes {
		resp.Data = append(resp.Data, *boxToResponse(&boxes[i]))
	}
	return resp, nil
}

func (s *cashBoxService) FindOpen(ctx context.Context, userID uint) (*model.CashBox, error) {
	return s.repo.FindOpenByUser(ctx, userID)
}

func boxToResponse(b *model.CashBox) *dto.CashBoxResponse {
	resp := &dto.CashBoxResponse{
		ID:       b.ID,
		UserID:   b.UserID,
		OpenedAt: b.OpenedAt.Format(time.RFC3339),
		IsOpen:   b.IsOpen,
	}
	if b.ClosedAt != nil {
		t := b.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &t
	}
	return resp
}
