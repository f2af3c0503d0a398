package model

import "time"

// Settings is the single-row application configuration table (ID is always 1).
type Settings struct {
	ID          uint `gorm:"primaryKey"`
	DarkMode    bool `gorm:"not null;default:false"`
	CompanyName string
	// CompanyLogo is a reference (path or URL) to the printed/receipt logo.
	CompanyLogo *string
	LastSyncAt  *time.Time
	UpdatedAt   time.Time
}

func (Settings) TableName() string { return "settings" }

// SettingsID is the fixed primary key of the singleton row.
const SettingsID uint = 1
