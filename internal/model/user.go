package model

import "time"

// User roles. Sellers operate the sales screen; admins additionally manage
// the catalog, users and settings.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User stores system users with role-based access.
// Passwords are stored as bcrypt hashes, never in plain text.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	// ProfilePhoto is a reference (path or URL) to the avatar image, if any.
	ProfilePhoto *string
	Active       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Shortcuts []Shortcut `gorm:"foreignKey:UserID"`
}
