package dto

import "github.com/shopspring/decimal"

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash transfer"`
	// CustomerEmail: optional — when present, the print worker also mails the
	// receipt PDF to the customer.
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
}

type SaleItemResponse struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

type SaleResponse struct {
	ID            uint               `json:"id"`
	UserID        uint               `json:"user_id"`
	SellerName    string             `json:"seller_name,omitempty"`
	CashBoxID     uint               `json:"cash_box_id"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     string             `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
