package export

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"campaign-dash/internal/core/domain"
)

// PDFHeaders is the column header row of PDF exports.
var PDFHeaders = []string{"Campaign", "Revenue", "Users", "Conversions", "CTR", "Status"}

// pdfWidths are column widths in millimetres on a landscape A4 page.
var pdfWidths = []float64{95, 40, 35, 35, 25, 37}

// PDFOptions controls the document header.
type PDFOptions struct {
	Title       string
	GeneratedAt time.Time
}

// PDFRow returns the display cells of r in PDFHeaders order.
func PDFRow(r domain.CampaignRecord) []string {
	return []string{
		r.Campaign,
		FormatCurrency(r.Revenue),
		FormatCount(r.Users),
		FormatCount(r.Conversions),
		FormatPercent(r.CTR),
		FormatStatus(r.Status),
	}
}

// WritePDF renders rows as a single table document. An empty row set
// returns ErrEmptyExport without writing anything.
func WritePDF(w io.Writer, rows []domain.CampaignRecord, opts PDFOptions) error {
	if len(rows) == 0 {
		return ErrEmptyExport
	}
	if opts.Title == "" {
		opts.Title = "Campaign Performance"
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("campaign-dash", true)
	pdf.SetCreationDate(opts.GeneratedAt)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(opts.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+opts.GeneratedAt.Format(time.RFC1123), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(246, 76, 103)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range PDFHeaders {
		pdf.CellFormat(pdfWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
	for n, r := range rows {
		fill := n%2 == 1
		for i, cell := range PDFRow(r) {
			align := "R"
			if i == 0 || i == len(PDFHeaders)-1 {
				align = "L"
			}
			pdf.CellFormat(pdfWidths[i], 7, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
