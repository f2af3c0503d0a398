package dto

type UserResponse struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
	Active       bool    `json:"active"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin seller"`
}

type UpdateUserRequest struct {
	Name         string  `json:"name"`
	Password     string  `json:"password"      validate:"omitempty,min=6"`
	Role         string  `json:"role"          validate:"omitempty,oneof=admin seller"`
	ProfilePhoto *string `json:"profile_photo"`
}

// ─── Keyboard shortcuts ──────────────────────────────────────────────────────

// ShortcutBinding maps one key to one product. Legacy "key:id:name" strings
// are gone — bindings are structured and validated on write.
type ShortcutBinding struct {
	Key       string `json:"key"        validate:"required,len=1,alphanum"`
	ProductID uint   `json:"product_id" validate:"required"`
}

type ReplaceShortcutsRequest struct {
	Shortcuts []ShortcutBinding `json:"shortcuts" validate:"dive"`
}

type ShortcutResponse struct {
	Key         string `json:"key"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
}
