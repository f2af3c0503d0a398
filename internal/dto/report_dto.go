package dto

import "github.com/shopspring/decimal"

// ReportFilter is bound from the query string of the report endpoints.
// Dates are inclusive day boundaries in the server's local time.
type ReportFilter struct {
	From   string `form:"from"    validate:"omitempty,datetime=2006-01-02"`
	To     string `form:"to"      validate:"omitempty,datetime=2006-01-02"`
	UserID *uint  `form:"user_id"`
}

// ProductSalesLine is one row of the units-per-product breakdown.
type ProductSalesLine struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Units       int             `json:"units"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type SalesReportResponse struct {
	From           string             `json:"from"`
	To             string             `json:"to"`
	TotalSales     int                `json:"total_sales"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	CashSales      int                `json:"cash_sales"`
	CashAmount     decimal.Decimal    `json:"cash_amount"`
	TransferSales  int                `json:"transfer_sales"`
	TransferAmount decimal.Decimal    `json:"transfer_amount"`
	Products       []ProductSalesLine `json:"products"`
	Sales          []SaleResponse     `json:"sales"`
}
