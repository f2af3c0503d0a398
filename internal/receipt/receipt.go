// Package receipt turns a recorded sale into printable per-unit tickets:
// a sale line with quantity N yields N individual documents, one page each,
// the way the park hands one physical ticket per ride.
package receipt

import (
	"time"

	"github.com/asa131211/sanchez-park/internal/model"

	"github.com/shopspring/decimal"
)

// Unit is one printable ticket for a single physical unit of a purchased
// product.
type Unit struct {
	ProductName string
	UnitPrice   decimal.Decimal
	// UnitIndex / UnitCount position this ticket inside its sale line (1..N).
	UnitIndex int
	UnitCount int
	// TicketIndex / TicketCount position it across the whole sale.
	TicketIndex   int
	TicketCount   int
	SellerName    string
	PaymentMethod string
	SaleTotal     decimal.Decimal
	IssuedAt      time.Time
}

// Expand emits the per-unit tickets for a sale's line snapshots, preserving
// line order and, within each line, ascending unit index. Given the same
// snapshot it always produces the same content — only IssuedAt varies with
// the caller's clock.
func Expand(items []model.SaleItem, sellerName, paymentMethod string, total decimal.Decimal, issuedAt time.Time) []Unit {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}

	units := make([]Unit, 0, count)
	for _, it := range items {
		for i := 1; i <= it.Quantity; i++ {
			units = append(units, Unit{
				ProductName:   it.ProductName,
				UnitPrice:     it.UnitPrice,
				UnitIndex:     i,
				UnitCount:     it.Quantity,
				TicketIndex:   len(units) + 1,
				TicketCount:   count,
				SellerName:    sellerName,
				PaymentMethod: paymentMethod,
				SaleTotal:     total,
				IssuedAt:      issuedAt,
			})
		}
	}
	return units
}
