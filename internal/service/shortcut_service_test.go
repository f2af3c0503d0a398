package service

import (
	"context"
	"testing"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShortcutFixture(t *testing.T) (ShortcutService, *stubShortcutRepo, *stubProductRepo) {
	t.Helper()
	repo := newStubShortcutRepo()
	products := newStubProductRepo()
	return NewShortcutService(repo, products), repo, products
}

func TestShortcutReplaceStoresLowercaseKeys(t *testing.T) {
	svc, _, products := newShortcutFixture(t)
	p := &model.Product{Name: "Ticket Adulto", Price: decimal.RequireFromString("10.00"), Active: true}
	require.NoError(t, products.Create(context.Background(), p))

	resp, err := svc.Replace(context.Background(), 1, dto.ReplaceShortcutsRequest{
		Shortcuts: []dto.ShortcutBinding{{Key: "A", ProductID: p.ID}},
	})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "a", resp[0].Key)
	assert.Equal(t, p.ID, resp[0].ProductID)
}

func TestShortcutReplaceRejectsDuplicateKeys(t *testing.T) {
	svc, _, products := newShortcutFixture(t)
	p := &model.Product{Name: "Ticket Adulto", Price: decimal.RequireFromString("10.00"), Active: true}
	require.NoError(t, products.Create(context.Background(), p))

	_, err := svc.Replace(context.Background(), 1, dto.ReplaceShortcutsRequest{
		Shortcuts: []dto.ShortcutBinding{
			{Key: "a", ProductID: p.ID},
			{Key: "A", ProductID: p.ID},
		},
	})
	assert.ErrorIs(t, err, ErrDuplicateShortcutKey)
}

func TestShortcutReplaceRejectsInactiveProduct(t *testing.T) {
	svc, _, products := newShortcutFixture(t)
	p := &model.Product{Name: "Ticket Adulto", Price: decimal.RequireFromString("10.00"), Active: true}
	require.NoError(t, products.Create(context.Background(), p))
	require.NoError(t, products.SoftDelete(context.Background(), p.ID))

	_, err := svc.Replace(context.Background(), 1, dto.ReplaceShortcutsRequest{
		Shortcuts: []dto.ShortcutBinding{{Key: "a", ProductID: p.ID}},
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestShortcutReplaceSwapsFullMap(t *testing.T) {
	svc, repo, products := newShortcutFixture(t)
	p1 := &model.Product{Name: "Ticket Adulto", Price: decimal.RequireFromString("10.00"), Active: true}
	p2 := &model.Product{Name: "Ticket Niño", Price: decimal.RequireFromString("5.00"), Active: true}
	require.NoError(t, products.Create(context.Background(), p1))
	require.NoError(t, products.Create(context.Background(), p2))

	_, err := svc.Replace(context.Background(), 1, dto.ReplaceShortcutsRequest{
		Shortcuts: []dto.ShortcutBinding{{Key: "a", ProductID: p1.ID}},
	})
	require.NoError(t, err)

	_, err = svc.Replace(context.Background(), 1, dto.ReplaceShortcutsRequest{
		Shortcuts: []dto.ShortcutBinding{{Key: "b", ProductID: p2.ID}},
	})
	require.NoError(t, err)

	stored := repo.byUser[1]
	require.Len(t, stored, 1)
	assert.Equal(t, "b", stored[0].Key)
}

func TestShortcutDeleteRemovesSingleKey(t *testing.T) {
	svc, repo, products := newShortcutFixture(t)
	p := &model.Product{Name: "Ticket Adulto", Price: decimal.RequireFromString("10.00"), Active: true}
	require.NoError(t, products.Create(context.Background(), p))

	_, err := svc.Replace(context.Background(), 1, dto.ReplaceShortcutsRequest{
		Shortcuts: []dto.ShortcutBinding{
			{Key: "a", ProductID: p.ID},
			{Key: "b", ProductID: p.ID},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, "A"))
	stored := repo.byUser[1]
	require.Len(t, stored, 1)
	assert.Equal(t, "b", stored[0].Key)
}
