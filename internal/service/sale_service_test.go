package service

import (
	"context"
	"testing"
	"time"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	svc      *saleService
	sales    *stubSaleRepo
	users    *stubUserRepo
	products *stubProductRepo
	boxes    *stubCashBoxRepo
	carts    *CartStore
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	f := &saleFixture{
		sales:    newStubSaleRepo(),
		users:    newStubUserRepo(),
		products: newStubProductRepo(),
		boxes:    newStubCashBoxRepo(),
		carts:    NewCartStore(),
	}
	f.svc = &saleService{
		repo:      f.sales,
		users:     f.users,
		products:  f.products,
		cashBoxes: NewCashBoxService(f.boxes),
		carts:     f.carts,
		now:       func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) },
	}
	return f
}

func (f *saleFixture) seedSeller(t *testing.T) *model.User {
	t.Helper()
	u := &model.User{Username: "maria", Name: "María", Role: model.RoleSeller, Active: true}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *saleFixture) seedProduct(t *testing.T, name string, price string) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Price: decimal.RequireFromString(price), Active: true}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *saleFixture) openBox(t *testing.T, userID uint) *model.CashBox {
	t.Helper()
	b := &model.CashBox{UserID: userID, OpenedAt: time.Now(), IsOpen: true}
	require.NoError(t, f.boxes.Create(context.Background(), b))
	return b
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	f.openBox(t, seller.ID)

	_, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutRejectsWithoutOpenCashBox(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	p := f.seedProduct(t, "Ticket Adulto", "10.00")
	f.carts.Add(seller.ID, p.ID)

	_, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, ErrNoOpenCashBox)

	// The cart must survive the failed attempt.
	assert.Equal(t, 1, f.carts.Units(seller.ID))
}

func TestCheckoutRejectsClosedCashBox(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	box := f.openBox(t, seller.ID)
	closedAt := time.Now()
	box.IsOpen = false
	box.ClosedAt = &closedAt
	require.NoError(t, f.boxes.Update(context.Background(), box))

	p := f.seedProduct(t, "Ticket Adulto", "10.00")
	f.carts.Add(seller.ID, p.ID)

	_, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, ErrNoOpenCashBox)
}

func TestCheckoutRejectsUnknownUser(t *testing.T) {
	f := newSaleFixture(t)

	_, err := f.svc.Checkout(context.Background(), 42, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCheckoutRecordsSaleAndClearsCart(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	box := f.openBox(t, seller.ID)
	adulto := f.seedProduct(t, "Ticket Adulto", "10.00")
	nino := f.seedProduct(t, "Ticket Niño", "5.00")

	f.carts.Add(seller.ID, adulto.ID)
	f.carts.Add(seller.ID, adulto.ID)
	f.carts.Add(seller.ID, nino.ID)

	resp, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentTransfer})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, model.PaymentTransfer, resp.PaymentMethod)
	assert.Equal(t, box.ID, resp.CashBoxID)
	assert.Equal(t, "María", resp.SellerName)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Ticket Adulto", resp.Items[0].ProductName)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "Ticket Niño", resp.Items[1].ProductName)
	assert.Equal(t, 1, resp.Items[1].Quantity)

	// Cart is emptied only after the sale is persisted.
	assert.Equal(t, 0, f.carts.Units(seller.ID))

	stored, err := f.sales.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("25.00")))
	assert.Len(t, stored.Items, 2)
}

func TestCheckoutFailedPersistLeavesCartIntact(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	f.openBox(t, seller.ID)
	p := f.seedProduct(t, "Ticket Adulto", "10.00")
	f.carts.Add(seller.ID, p.ID)

	f.sales.failCreate = true

	_, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	require.Error(t, err)

	// Nothing persisted, cart untouched — the seller can retry.
	assert.Empty(t, f.sales.sales)
	assert.Equal(t, 1, f.carts.Units(seller.ID))
}

func TestCheckoutRejectsDeactivatedProduct(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	f.openBox(t, seller.ID)
	p := f.seedProduct(t, "Ticket Adulto", "10.00")
	f.carts.Add(seller.ID, p.ID)

	// The product is pulled from the catalog while it sits in the cart.
	require.NoError(t, f.products.SoftDelete(context.Background(), p.ID))

	_, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	assert.ErrorIs(t, err, ErrProductInactive)

	// Nothing persisted, cart untouched.
	assert.Empty(t, f.sales.sales)
	assert.Equal(t, 1, f.carts.Units(seller.ID))
}

func TestCheckoutSnapshotsSurvivePriceEdits(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	f.openBox(t, seller.ID)
	p := f.seedProduct(t, "Ticket Adulto", "10.00")
	f.carts.Add(seller.ID, p.ID)

	resp, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	require.NoError(t, err)

	// Edit the product after the sale: the recorded snapshot must not change.
	p.Name = "Ticket General"
	p.Price = decimal.RequireFromString("12.50")
	require.NoError(t, f.products.Update(context.Background(), p))

	stored, err := f.sales.FindByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ticket Adulto", stored.Items[0].ProductName)
	assert.True(t, stored.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("10.00")))
}

func TestCheckoutUsesCurrentPriceNotAddTimePrice(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	f.openBox(t, seller.ID)
	p := f.seedProduct(t, "Ticket Adulto", "10.00")
	f.carts.Add(seller.ID, p.ID)

	// Price changes while the product sits in the cart: checkout charges the
	// catalog price in effect at confirmation time.
	p.Price = decimal.RequireFromString("15.00")
	require.NoError(t, f.products.Update(context.Background(), p))

	resp, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("15.00")))
}

func TestSaleListPaginates(t *testing.T) {
	f := newSaleFixture(t)
	seller := f.seedSeller(t)
	f.openBox(t, seller.ID)
	p := f.seedProduct(t, "Ticket Adulto", "10.00")

	for i := 0; i < 3; i++ {
		f.carts.Add(seller.ID, p.ID)
		_, err := f.svc.Checkout(context.Background(), seller.ID, dto.CheckoutRequest{PaymentMethod: model.PaymentCash})
		require.NoError(t, err)
	}

	resp, err := f.svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Data, 2)
}
