package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
)

const (
	font        = "Helvetica"
	maxNameRune = 48
)

// QuoteRenderer lays out a Quote as a single A4 page using the PDF core
// fonts, so no font files are needed at runtime.
type QuoteRenderer struct {
	company string
}

var _ interfaces.IQuoteRenderer = (*QuoteRenderer)(nil)

func NewQuoteRenderer(company string) *QuoteRenderer {
	return &QuoteRenderer{company: company}
}

func (r *QuoteRenderer) Render(q entities.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Plumbing estimate "+q.ID, true)
	pdf.AddPage()

	pdf.SetFont(font, "B", 16)
	pdf.Cell(0, 10, tr("Plumbing estimate"))
	pdf.Ln(10)

	pdf.SetFont(font, "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", q.ProjectName)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Quote %s", q.ID))
	pdf.Ln(6)
	if !q.CreatedAt.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Issued %s", q.CreatedAt.UTC().Format("2006-01-02 15:04 MST")))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Area: %s sqm   Fixtures: %d   Location factor: %s",
		num(q.AreaSqm), q.Fixtures, num(q.LocationFactor)))
	pdf.Ln(10)

	pdf.SetFont(font, "B", 10)
	pdf.CellFormat(80, 7, "Service", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Unit", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Rate", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Cost", "B", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont(font, "", 10)
	for _, it := range q.Items {
		pdf.CellFormat(80, 6, tr(trim(it.ServiceName, maxNameRune)), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, string(it.Unit), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, num(it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money(it.Rate), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money(it.Cost), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	if len(q.Items) == 0 {
		pdf.Cell(0, 6, "No services selected.")
		pdf.Ln(6)
	}

	pdf.Ln(4)
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Subtotal", q.Subtotal},
		{"Overhead", q.Overhead},
		{"Tax", q.Tax},
	} {
		pdf.CellFormat(155, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, money(row.value), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.SetFont(font, "B", 11)
	pdf.CellFormat(155, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, money(q.Total), "T", 0, "R", false, 0, "")
	pdf.Ln(12)

	if r.company != "" {
		pdf.SetFont(font, "", 9)
		pdf.Cell(0, 5, tr(r.company))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		logrus.WithFields(logrus.Fields{"quote_id": q.ID, "err": err}).Error("[pdf] output failed")
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
