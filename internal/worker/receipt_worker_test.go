package worker

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/asa131211/sanchez-park/internal/model"
	"github.com/asa131211/sanchez-park/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Minimal repository stubs ─────────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[uint]*model.Sale
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *stubSaleRepo) ListByRange(_ context.Context, _, _ time.Time, _ *uint) ([]model.Sale, error) {
	return nil, nil
}

func (r *stubSaleRepo) ListByCashBox(_ context.Context, _ uint) ([]model.Sale, error) {
	return nil, nil
}

func (r *stubSaleRepo) Page(_ context.Context, _, _ int) ([]model.Sale, int64, error) {
	return nil, 0, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

type stubSettingsRepo struct{ companyName string }

func (r *stubSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	return &model.Settings{ID: model.SettingsID, CompanyName: r.companyName}, nil
}

func (r *stubSettingsRepo) Update(_ context.Context, _ *model.Settings) error { return nil }

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

// ─────────────────────────────────────────────────────────────────────────────

func seedSale(repo *stubSaleRepo, id uint) {
	repo.sales[id] = &model.Sale{
		ID:            id,
		UserID:        1,
		CashBoxID:     1,
		Total:         decimal.RequireFromString("25.00"),
		PaymentMethod: model.PaymentCash,
		CreatedAt:     time.Now(),
		User:          &model.User{ID: 1, Name: "María"},
		Items: []model.SaleItem{
			{SaleID: id, ProductID: 1, ProductName: "Ticket Adulto", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
			{SaleID: id, ProductID: 2, ProductName: "Ticket Niño", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 1},
		},
	}
}

func TestReceiptWorkerGeneratesPDF(t *testing.T) {
	dir := t.TempDir()
	sales := &stubSaleRepo{sales: make(map[uint]*model.Sale)}
	seedSale(sales, 3)

	w := NewReceiptWorker(sales, &stubSettingsRepo{companyName: "Sánchez Park"}, nil, dir)

	payload, err := json.Marshal(ReceiptJobPayload{SaleID: 3})
	require.NoError(t, err)
	require.NoError(t, w.Process(context.Background(), payload))

	info, err := os.Stat(filepath.Join(dir, "venta_3.pdf"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestReceiptWorkerFailsOnUnknownSale(t *testing.T) {
	sales := &stubSaleRepo{sales: make(map[uint]*model.Sale)}
	w := NewReceiptWorker(sales, &stubSettingsRepo{}, nil, t.TempDir())

	payload, err := json.Marshal(ReceiptJobPayload{SaleID: 99})
	require.NoError(t, err)
	assert.Error(t, w.Process(context.Background(), payload))
}

func TestReceiptWorkerRejectsMalformedPayload(t *testing.T) {
	w := NewReceiptWorker(&stubSaleRepo{sales: make(map[uint]*model.Sale)}, &stubSettingsRepo{}, nil, t.TempDir())
	assert.Error(t, w.Process(context.Background(), json.RawMessage(`{`)))
}
