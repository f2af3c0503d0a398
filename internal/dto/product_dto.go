package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name  string          `json:"name"  validate:"required"`
	Price decimal.Decimal `json:"price" validate:"required,gt=0"`
	Image *string         `json:"image"`
}

type UpdateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Image *string         `json:"image"`
}

type ProductResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     *string         `json:"image,omitempty"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// PriceCheckResponse is served by the public cached price endpoint.
type PriceCheckResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
