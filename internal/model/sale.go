package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the register.
const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

// Sale is an immutable record of a completed checkout. It references the cash
// box it was recorded under and carries its own line snapshots — no update or
// delete path exists.
type Sale struct {
	ID            uint            `gorm:"primaryKey"`
	UserID        uint            `gorm:"not null;index"`
	CashBoxID     uint            `gorm:"not null;index"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time       `gorm:"index"`

	Items []SaleItem `gorm:"foreignKey:SaleID"`
	User  *User      `gorm:"foreignKey:UserID"`
}

// SaleItem is the name/price snapshot copied from the product at sale time,
// decoupled from any later product edit.
type SaleItem struct {
	ID          uint            `gorm:"primaryKey"`
	SaleID      uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null"`
	ProductName string          `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
}
