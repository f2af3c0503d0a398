package worker

// receipt_worker.go
// Processes receipt printing jobs from QueueReceipts: loads the committed
// sale, expands it into per-unit tickets, renders the PDF, and — when the
// checkout carried a customer email — chains an email job with the file
// attached. Failures land in the DLQ; the sale itself is never touched.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/asa131211/sanchez-park/internal/receipt"
	"github.com/asa131211/sanchez-park/internal/repository"

	"github.com/rs/zerolog/log"
)

type ReceiptWorker struct {
	sales       repository.SaleRepository
	settings    repository.SettingsRepository
	dispatcher  *Dispatcher
	storagePath string
}

func NewReceiptWorker(
	sales repository.SaleRepository,
	settings repository.SettingsRepository,
	dispatcher *Dispatcher,
	storagePath string,
) *ReceiptWorker {
	return &ReceiptWorker{
		sales:       sales,
		settings:    settings,
		dispatcher:  dispatcher,
		storagePath: storagePath,
	}
}

func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("receipt_worker: invalid payload: %w", err)
	}

	sale, err := w.sales.FindByID(ctx, payload.SaleID)
	if err != nil {
		return fmt.Errorf("receipt_worker: sale %d not found: %w", payload.SaleID, err)
	}

	sellerName := ""
	if sale.User != nil {
		sellerName = sale.User.Name
	}

	companyName := ""
	if cfg, err := w.settings.Get(ctx); err == nil {
		companyName = cfg.CompanyName
	}

	units := receipt.Expand(sale.Items, sellerName, sale.PaymentMethod, sale.Total, time.Now())
	pdfPath, err := receipt.GeneratePDF(units, companyName, w.storagePath, sale.ID)
	if err != nil {
		return fmt.Errorf("receipt_worker: render sale %d: %w", sale.ID, err)
	}

	log.Info().
		Uint("sale_id", sale.ID).
		Int("tickets", len(units)).
		Str("pdf", pdfPath).
		Msg("receipt_worker: tickets generated")

	if payload.CustomerEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: payload.CustomerEmail,
			Subject: fmt.Sprintf("Tickets de venta #%d", sale.ID),
			Body:    "Adjuntamos los tickets de su compra. ¡Gracias!",
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Error().Err(err).Uint("sale_id", sale.ID).Msg("receipt_worker: failed to enqueue email")
		}
	}
	return nil
}
