package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfLandscapeColumns = 6
	pdfRowHeight        = 7.0
	pdfMinColumnWidth   = 14.0
)

// PDFExporter renders a Dataset as a paginated table with a repeated header row.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// Render lays out the dataset. Wide tables switch to landscape.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	orientation := "P"
	if len(data.Headers) > pdfLandscapeColumns {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	widths := columnWidths(data, pageWidth-left-right)

	generated := e.now().UTC().Format("2006-01-02 15:04 MST")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s  |  Page %d", generated, pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range data.Headers {
			pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}

	pdf.AddPage()
	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d records", len(data.Rows)), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for i := range data.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		for j, cell := range data.Record(i) {
			pdf.CellFormat(widths[j], pdfRowHeight, tr(fit(pdf, cell, widths[j])), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths splits the printable width proportionally to the longest cell of each column.
func columnWidths(data Dataset, total float64) []float64 {
	weights := make([]float64, len(data.Headers))
	var sum float64
	for i, h := range data.Headers {
		longest := len(h)
		for _, row := range data.Rows {
			if n := len(row[h]); n > longest {
				longest = n
			}
		}
		if longest > 40 {
			longest = 40
		}
		weights[i] = float64(longest)
		sum += weights[i]
	}
	widths := make([]float64, len(weights))
	for i, w := range weights {
		widths[i] = total * w / sum
		if widths[i] < pdfMinColumnWidth {
			widths[i] = pdfMinColumnWidth
		}
	}
	return widths
}

func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width-2 {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-2 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
