package service

import (
	"context"
	"errors"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("producto no encontrado")

// CartService exposes the per-user cart over the catalog: mutations validate
// the product exists, reads resolve the product's *current* price.
type CartService interface {
	Add(ctx context.Context, userID, productID uint) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) (*dto.CartResponse, error)
	Remove(ctx context.Context, userID, productID uint) (*dto.CartResponse, error)
	Clear(ctx context.Context, userID uint) error
	View(ctx context.Context, userID uint) (*dto.CartResponse, error)
}

type cartService struct {
	carts    *CartStore
	products repository.ProductRepository
}

func NewCartService(carts *CartStore, products repository.ProductRepository) CartService {
	return &cartService{carts: carts, products: products}
}

func (s *cartService) Add(ctx context.Context, userID, productID uint) (*dto.CartResponse, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil || !p.Active {
		return nil, ErrProductNotFound
	}
	s.carts.Add(userID, productID)
	return s.View(ctx, userID)
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) (*dto.CartResponse, error) {
	s.carts.UpdateQuantity(userID, productID, quantity)
	return s.View(ctx, userID)
}

func (s *cartService) Remove(ctx context.Context, userID, productID uint) (*dto.CartResponse, error) {
	s.carts.Remove(userID, productID)
	return s.View(ctx, userID)
}

func (s *cartService) Clear(_ context.Context, userID uint) error {
	s.carts.Clear(userID)
	return nil
}

// View renders the cart with live catalog prices. Lines whose product has
// been deactivated since it was added are skipped rather than priced stale.
func (s *cartService) View(ctx context.Context, userID uint) (*dto.CartResponse, error) {
	lines := s.carts.Lines(userID)

	resp := &dto.CartResponse{
		Lines: make([]dto.CartLineResponse, 0, len(lines)),
		Total: decimal.Zero,
	}
	for _, l := range lines {
		p, err := s.products.FindByID(ctx, l.ProductID)
		if err != nil || !p.Active {
			continue
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		resp.Lines = append(resp.Lines, dto.CartLineResponse{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    l.Quantity,
			Subtotal:    subtotal,
		})
		resp.ItemCount += l.Quantity
		resp.Total = resp.Total.Add(subtotal)
	}
	return resp, nil
}
