package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalog entry (a ticket or game pass).
// Sales copy name and price into their own line snapshots, so editing a
// product never rewrites history — products are soft-deleted, never removed.
type Product struct {
	ID    uint            `gorm:"primaryKey"`
	Name  string          `gorm:"index;not null"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Image is a reference (path or URL) to the catalog picture, if any.
	Image     *string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
