package dto

type SettingsResponse struct {
	DarkMode    bool    `json:"dark_mode"`
	CompanyName string  `json:"company_name"`
	CompanyLogo *string `json:"company_logo,omitempty"`
	LastSyncAt  *string `json:"last_sync_at,omitempty"`
}

type UpdateSettingsRequest struct {
	DarkMode    *bool   `json:"dark_mode"`
	CompanyName *string `json:"company_name"`
	CompanyLogo *string `json:"company_logo"`
}
