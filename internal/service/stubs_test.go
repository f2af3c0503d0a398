package service

// In-memory repository stubs shared by the service tests, in place of the
// gorm-backed implementations.

import (
	"context"
	"errors"
	"time"

	"github.com/asa131211/sanchez-park/internal/model"
	"github.com/asa131211/sanchez-park/internal/repository"

	"gorm.io/gorm"
)

// Stubs surface the same not-found sentinel the gorm-backed repositories do,
// so errors.Is checks in the services behave identically under test.
var errNotFound = gorm.ErrRecordNotFound

// ── UserRepository stub ──────────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return errors.New("duplicate username")
		}
	}
	u.ID = r.nextID
	r.nextID++
	cloned := *u
	r.users[u.ID] = &cloned
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	cloned := *u
	r.users[u.ID] = &cloned
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uint) error {
	u, ok := r.users[id]
	if !ok {
		return errNotFound
	}
	u.Active = false
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uint) error {
	u, ok := r.users[id]
	if !ok {
		return errNotFound
	}
	u.Active = true
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── ProductRepository stub ───────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = r.nextID
	r.nextID++
	cloned := *p
	r.products[p.ID] = &cloned
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubProductRepo) List(_ context.Context, includeInactive bool) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if includeInactive || p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	cloned := *p
	r.products[p.ID] = &cloned
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uint) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.Active = false
	return nil
}

func (r *stubProductRepo) Reactivate(_ context.Context, id uint) error {
	p, ok := r.products[id]
	if !ok {
		return errNotFound
	}
	p.Active = true
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── SaleRepository stub ──────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales  map[uint]*model.Sale
	nextID uint
	// failCreate forces Create to fail, simulating a lost DB connection.
	failCreate bool
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uint]*model.Sale), nextID: 1}
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	if r.failCreate {
		return errors.New("connection refused")
	}
	s.ID = r.nextID
	r.nextID++
	for i := range s.Items {
		s.Items[i].SaleID = s.ID
	}
	cloned := *s
	cloned.Items = append([]model.SaleItem(nil), s.Items...)
	r.sales[s.ID] = &cloned
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errNotFound
	}
	cloned := *s
	cloned.Items = append([]model.SaleItem(nil), s.Items...)
	return &cloned, nil
}

func (r *stubSaleRepo) ListByRange(_ context.Context, from, to time.Time, userID *uint) ([]model.Sale, error) {
	var out []model.Sale
	for id := uint(1); id < r.nextID; id++ {
		s, ok := r.sales[id]
		if !ok {
			continue
		}
		if s.CreatedAt.Before(from) || !s.CreatedAt.Before(to) {
			continue
		}
		if userID != nil && s.UserID != *userID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) ListByCashBox(_ context.Context, cashBoxID uint) ([]model.Sale, error) {
	var out []model.Sale
	for id := uint(1); id < r.nextID; id++ {
		if s, ok := r.sales[id]; ok && s.CashBoxID == cashBoxID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) Page(_ context.Context, page, limit int) ([]model.Sale, int64, error) {
	var out []model.Sale
	for id := uint(1); id < r.nextID; id++ {
		if s, ok := r.sales[id]; ok {
			out = append(out, *s)
		}
	}
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── CashBoxRepository stub ───────────────────────────────────────────────────

type stubCashBoxRepo struct {
	boxes  map[uint]*model.CashBox
	nextID uint
	// failFind makes FindOpenByUser return this error, simulating a DB outage.
	failFind error
}

func newStubCashBoxRepo() *stubCashBoxRepo {
	return &stubCashBoxRepo{boxes: make(map[uint]*model.CashBox), nextID: 1}
}

func (r *stubCashBoxRepo) Create(_ context.Context, b *model.CashBox) error {
	b.ID = r.nextID
	r.nextID++
	cloned := *b
	r.boxes[b.ID] = &cloned
	return nil
}

func (r *stubCashBoxRepo) FindByID(_ context.Context, id uint) (*model.CashBox, error) {
	b, ok := r.boxes[id]
	if !ok {
		return nil, errNotFound
	}
	cloned := *b
	return &cloned, nil
}

func (r *stubCashBoxRepo) FindOpenByUser(_ context.Context, userID uint) (*model.CashBox, error) {
	if r.failFind != nil {
		return nil, r.failFind
	}
	for _, b := range r.boxes {
		if b.UserID == userID && b.IsOpen {
			cloned := *b
			return &cloned, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCashBoxRepo) Update(_ context.Context, b *model.CashBox) error {
	cloned := *b
	r.boxes[b.ID] = &cloned
	return nil
}

func (r *stubCashBoxRepo) History(_ context.Context, page, limit int) ([]model.CashBox, int64, error) {
	var out []model.CashBox
	for id := uint(1); id < r.nextID; id++ {
		if b, ok := r.boxes[id]; ok && !b.IsOpen {
			out = append(out, *b)
		}
	}
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

var _ repository.CashBoxRepository = (*stubCashBoxRepo)(nil)

// ── ShortcutRepository stub ──────────────────────────────────────────────────

type stubShortcutRepo struct {
	byUser map[uint][]model.Shortcut
}

func newStubShortcutRepo() *stubShortcutRepo {
	return &stubShortcutRepo{byUser: make(map[uint][]model.Shortcut)}
}

func (r *stubShortcutRepo) ListByUser(_ context.Context, userID uint) ([]model.Shortcut, error) {
	return append([]model.Shortcut(nil), r.byUser[userID]...), nil
}

func (r *stubShortcutRepo) Replace(_ context.Context, userID uint, shortcuts []model.Shortcut) error {
	r.byUser[userID] = append([]model.Shortcut(nil), shortcuts...)
	return nil
}

func (r *stubShortcutRepo) Delete(_ context.Context, userID uint, key string) error {
	kept := r.byUser[userID][:0]
	for _, sc := range r.byUser[userID] {
		if sc.Key != key {
			kept = append(kept, sc)
		}
	}
	r.byUser[userID] = kept
	return nil
}

var _ repository.ShortcutRepository = (*stubShortcutRepo)(nil)

// ── SettingsRepository stub ──────────────────────────────────────────────────

type stubSettingsRepo struct {
	row *model.Settings
}

func newStubSettingsRepo() *stubSettingsRepo {
	return &stubSettingsRepo{row: &model.Settings{ID: model.SettingsID, CompanyName: "Sánchez Park"}}
}

func (r *stubSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	cloned := *r.row
	return &cloned, nil
}

func (r *stubSettingsRepo) Update(_ context.Context, s *model.Settings) error {
	cloned := *s
	r.row = &cloned
	return nil
}

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)
