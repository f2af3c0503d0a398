package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/asa131211/sanchez-park/internal/dto"
	"github.com/asa131211/sanchez-park/internal/model"
	"github.com/asa131211/sanchez-park/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService aggregates recorded sales for the reports screen and the CSV
// export. It only ever reads — sales are append-only.
type ReportService interface {
	Summary(ctx context.Context, filter dto.ReportFilter) (*dto.SalesReportResponse, error)
	// ExportCSV streams the filtered sales as CSV rows, one row per sale.
	ExportCSV(ctx context.Context, filter dto.ReportFilter, w io.Writer) error
}

type reportService struct {
	repo repository.SaleRepository
	now  func() time.Time
}

func NewReportService(repo repository.SaleRepository) ReportService {
	return &reportService{repo: repo, now: time.Now}
}

// rangeOf resolves the filter's inclusive day boundaries. Default: today.
func (s *reportService) rangeOf(filter dto.ReportFilter) (time.Time, time.Time, error) {
	today := s.now()
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	to := from.AddDate(0, 0, 1)

	if filter.From != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filter.From, today.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fecha 'from' inválida: %w", err)
		}
		from = parsed
		to = from.AddDate(0, 0, 1)
	}
	if filter.To != "" {
		parsed, err := time.ParseInLocation("2006-01-02", filter.To, today.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fecha 'to' inválida: %w", err)
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func (s *reportService) Summary(ctx context.Context, filter dto.ReportFilter) (*dto.SalesReportResponse, error) {
	from, to, err := s.rangeOf(filter)
	if err != nil {
		return nil, err
	}

	sales, err := s.repo.ListByRange(ctx, from, to, filter.UserID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesReportResponse{
		From:           from.Format("2006-01-02"),
		To:             to.AddDate(0, 0, -1).Format("2006-01-02"),
		TotalAmount:    decimal.Zero,
		CashAmount:     decimal.Zero,
		TransferAmount: decimal.Zero,
		Products:       []dto.ProductSalesLine{},
		Sales:          make([]dto.SaleResponse, 0, len(sales)),
	}

	// Per-product accumulation preserving first-seen order.
	index := map[uint]int{}

	for i := range sales {
		sale := &sales[i]
		resp.TotalSales++
		resp.TotalAmount = resp.TotalAmount.Add(sale.Total)

		switch sale.PaymentMethod {
		case model.PaymentCash:
			resp.CashSales++
			resp.CashAmount = resp.CashAmount.Add(sale.Total)
		case model.PaymentTransfer:
			resp.TransferSales++
			resp.TransferAmount = resp.TransferAmount.Add(sale.Total)
		}

		for _, it := range sale.Items {
			pos, ok := index[it.ProductID]
			if !ok {
				pos = len(resp.Products)
				index[it.ProductID] = pos
				resp.Products = append(resp.Products, dto.ProductSalesLine{
					ProductID:   it.ProductID,
					ProductName: it.ProductName,
					Revenue:     decimal.Zero,
				})
			}
			resp.Products[pos].Units += it.Quantity
			resp.Products[pos].Revenue = resp.Products[pos].Revenue.
				Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		resp.Sales = append(resp.Sales, *saleToResponse(sale))
	}

	return resp, nil
}

func (s *reportService) ExportCSV(ctx context.Context, filter dto.ReportFilter, w io.Writer) error {
	from, to, err := s.rangeOf(filter)
	if err != nil {
		return err
	}

	sales, err := s.repo.ListByRange(ctx, from, to, filter.UserID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Fecha", "Vendedor", "Productos", "Total", "Método de Pago"}); err != nil {
		return err
	}

	for i := range sales {
		sale := &sales[i]
		sellerName := ""
		if sale.User != nil {
			sellerName = sale.User.Name
		}
		products := make([]string, 0, len(sale.Items))
		for _, it := range sale.Items {
			products = append(products, fmt.Sprintf("%s x%d", it.ProductName, it.Quantity))
		}
		row := []string{
			sale.CreatedAt.Format("2006-01-02 15:04:05"),
			sellerName,
			strings.Join(products, "; "),
			sale.Total.StringFixed(2),
			sale.PaymentMethod,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
