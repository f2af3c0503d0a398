package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/model"
	"github.com/asa131211/sanchez-park/internal/repository"
	"github.com/asa131211/sanchez-park/internal/worker"

	"github.com/shopspring/decimal"
)

var (
	ErrCartEmpty       = errors.New("El carrito está vacío")
	ErrNoOpenCashBox   = errors.New("No hay una caja abierta")
	ErrUserNotFound    = errors.New("Usuario no encontrado")
	ErrProductInactive = errors.New("El producto está inactivo y no puede venderse")
)

type SaleService interface {
	// Checkout converts the user's cart into a persisted Sale. Preconditions:
	// the user exists, has an open cash box, and the cart is non-empty; any
	// violation rejects the call before anything is written. On success the
	// cart is cleared and receipt printing is enqueued; on a store failure the
	// cart is left untouched so the call can simply be retried.
	Checkout(ctx context.Context, userID uint, req dto.CheckoutRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uint) (*dto.SaleResponse, error)
	List(ctx context.Context, page, limit int) (*dto.SaleListResponse, error)
}

type saleService struct {
	repo       repository.SaleRepository
	users      repository.UserRepository
	products   repository.ProductRepository
	cashBoxes  CashBoxService
	carts      *CartStore
	dispatcher *worker.Dispatcher
	now        func() time.Time
}

func NewSaleService(
	repo repository.SaleRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	cashBoxes CashBoxService,
	carts *CartStore,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		repo:       repo,
		users:      users,
		products:   products,
		cashBoxes:  cashBoxes,
		carts:      carts,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *saleService) Checkout(ctx context.Context, userID uint, req dto.CheckoutRequest) (*dto.SaleResponse, error) {
	// 1. Preconditions — nothing is written until all of them hold.
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	box, err := s.cashBoxes.FindOpen(ctx, userID)
	if err != nil || box == nil || !box.IsOpen {
		return nil, ErrNoOpenCashBox
	}

	lines := s.carts.Lines(userID)
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// 2. Snapshot cart lines at current catalog prices. From here on the sale
	// is decoupled from any later product edit.
	items := make([]model.SaleItem, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		p, err := s.products.FindByID(ctx, l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("producto %d no encontrado: %w", l.ProductID, err)
		}
		if !p.Active {
			return nil, fmt.Errorf("%w: %s", ErrProductInactive, p.Name)
		}
		items = append(items, model.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    l.Quantity,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	sale := &model.Sale{
		UserID:        user.ID,
		CashBoxID:     box.ID,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		CreatedAt:     s.now(),
	}

	// 3. Single all-or-nothing write. On failure the cart is untouched and the
	// caller can retry with the same cart.
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("error guardando la venta: %w", err)
	}

	// 4. Post-commit: clear the cart, then hand printing off to the worker
	// queue. Printing is best-effort — a failure here never touches the sale.
	s.carts.Clear(userID)

	if s.dispatcher != nil {
		payload := worker.ReceiptJobPayload{SaleID: sale.ID}
		if req.CustomerEmail != nil {
			payload.CustomerEmail = *req.CustomerEmail
		}
		_ = s.dispatcher.EnqueueReceiptPrint(ctx, payload)
	}

	resp := saleToResponse(sale)
	resp.SellerName = user.Name
	return resp, nil
}

func (s *saleService) Get(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Venta no encontrada")
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, page, limit int) (*dto.SaleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	sales, total, err := s.repo.Page(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{
		Data:  make([]dto.SaleResponse, 0, len(sales)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for i := range sales {
		resp.Data = append(resp.Data, *saleToResponse(&sales[i]))
	}
	return resp, nil
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		})
	}
	resp := &dto.SaleResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		CashBoxID:     s.CashBoxID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
	if s.User != nil {
		resp.SellerName = s.User.Name
	}
	return resp
}
