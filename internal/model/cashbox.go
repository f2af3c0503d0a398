package model

import "time"

// CashBox represents one cash register session: opened by a user, closed
// exactly once. A closed box is never reopened — a new one is created instead.
type CashBox struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;index"`
	OpenedAt time.Time
	ClosedAt *time.Time
	IsOpen   bool `gorm:"not null;default:true;index"`
}

func (CashBox) TableName() string { return "cash_boxes" }
