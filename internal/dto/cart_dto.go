package dto

import "github.com/shopspring/decimal"

type AddCartItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
}

type UpdateCartItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	// Quantity replaces the line's quantity; zero or less removes the line.
	Quantity int `json:"quantity"`
}

type CartLineResponse struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count"`
	Total     decimal.Decimal    `json:"total"`
}
