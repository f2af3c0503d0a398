package receipt

// pdf.go — PDF rendering for per-unit sale tickets using go-pdf/fpdf.
// 80mm-wide thermal receipt stock, one page per ticket:
//   - Header with company name, date and seller
//   - "Ticket i de n" position line
//   - Product name, unit index within its line, unit price
//   - Payment method and overall sale total
//
// The output file is saved to storagePath/venta_{saleID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

var paymentLabels = map[string]string{
	"cash":     "Efectivo",
	"transfer": "Transferencia",
}

// GeneratePDF writes all ticket units of one sale into a single PDF, one page
// per unit. Returns the absolute path of the generated file.
func GeneratePDF(units []Unit, companyName, storagePath string, saleID uint) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	if companyName == "" {
		companyName = "Sánchez Park"
	}

	filePath := filepath.Join(storagePath, fmt.Sprintf("venta_%d.pdf", saleID))

	// 80mm × 120mm — thermal receipt paper (not in fpdf's named size list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 80, Ht: 120},
	})
	pdf.SetMargins(5, 5, 5)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 10

	for _, u := range units {
		pdf.AddPage()

		// ── Header ───────────────────────────────────────────────────────────
		pdf.SetFont("Courier", "B", 12)
		pdf.CellFormat(contentW, 6, tr(companyName), "", 1, "C", false, 0, "")
		pdf.SetFont("Courier", "", 9)
		pdf.CellFormat(contentW, 5, "TICKET DE VENTA", "", 1, "C", false, 0, "")
		pdf.CellFormat(contentW, 4, u.IssuedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
		pdf.CellFormat(contentW, 4, tr("Vendedor: "+u.SellerName), "", 1, "C", false, 0, "")
		pdf.CellFormat(contentW, 4, fmt.Sprintf("Ticket %d de %d", u.TicketIndex, u.TicketCount), "", 1, "C", false, 0, "")

		pdf.Ln(2)
		pdf.SetLineWidth(0.2)
		pdf.Line(5, pdf.GetY(), pageW-5, pdf.GetY())
		pdf.Ln(3)

		// ── Product ──────────────────────────────────────────────────────────
		pdf.SetFont("Courier", "B", 11)
		pdf.MultiCell(contentW, 6, tr(u.ProductName), "", "L", false)
		pdf.SetFont("Courier", "", 9)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Unidad: %d de %d", u.UnitIndex, u.UnitCount), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "Precio: S/"+u.UnitPrice.StringFixed(2), "", 1, "L", false, 0, "")

		pdf.Ln(2)
		pdf.Line(5, pdf.GetY(), pageW-5, pdf.GetY())
		pdf.Ln(3)

		// ── Footer ───────────────────────────────────────────────────────────
		label, ok := paymentLabels[u.PaymentMethod]
		if !ok {
			label = u.PaymentMethod
		}
		pdf.SetFont("Courier", "", 8)
		pdf.CellFormat(contentW, 4, tr("Método de pago: "+label), "", 1, "C", false, 0, "")
		pdf.CellFormat(contentW, 4, "Total de la venta: S/"+u.SaleTotal.StringFixed(2), "", 1, "C", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Courier", "I", 8)
		pdf.CellFormat(contentW, 4, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
