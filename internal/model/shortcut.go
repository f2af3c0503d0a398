package model

import "time"

// Shortcut binds a single keyboard key to a product so sellers can add it to
// the cart with one keystroke on the sales screen. One binding per user+key.
type Shortcut struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_shortcuts_user_key"`
	Key       string `gorm:"type:varchar(1);not null;uniqueIndex:idx_shortcuts_user_key"`
	ProductID uint   `gorm:"not null;index"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
