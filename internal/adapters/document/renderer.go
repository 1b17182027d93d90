// Package document renders printable invoices and QR codes.
package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
)

const qrSize = 256

// Renderer produces invoice PDFs and QR codes.
type Renderer struct {
	shopName string
}

// NewRenderer returns a renderer printing shopName in document headers.
func NewRenderer(shopName string) *Renderer {
	return &Renderer{shopName: shopName}
}

var _ portssvc.DocumentRenderer = (*Renderer)(nil)

// QRCodePNG encodes content as a PNG QR code.
func (r *Renderer) QRCodePNG(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return png, nil
}

// InvoicePDF renders inv as a single A4 page.
func (r *Renderer) InvoicePDF(inv *domain.Invoice) ([]byte, error) {
	qrPNG, err := r.QRCodePNG(inv.InvoiceCode)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // core fonts are cp1252
	pdf.SetTitle("Invoice "+inv.InvoiceCode, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(r.shopName))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr("Invoice "+inv.InvoiceCode))
	pdf.Ln(6)
	pdf.Cell(0, 8, inv.CreatedAt.Format("02/01/2006 15:04"))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 12, 35, 35, false, imageOpts, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Customer")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		inv.FirstName + " " + inv.LastName,
		"Born " + inv.DateOfBirth.Format("02/01/2006"),
		inv.Address,
		"Payment: " + string(inv.PaymentMethod),
	} {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	widths := []float64{25, 35, 40, 40, 40}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Currency", "EUR", "Local", "EUR -> local", "Local -> EUR"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	total := decimal.Zero
	for _, it := range inv.Items {
		cells := []string{
			it.Currency,
			it.AmountEuro.StringFixed(2),
			it.AmountLocal.StringFixed(2),
			formatRate(it.RateEurToLocal),
			formatRate(it.RateLocalToEur),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		total = total.Add(it.AmountEuro)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0], 8, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[1], 8, total.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// formatRate prints a rate with up to six decimals, trimming trailing zeros.
func formatRate(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
