package export

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

func writePDF(title string, rows []*Row, now time.Time) ([]byte, error) {
	// Landscape A4: exports are wide tables
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Exported: "+now.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(rows) == 0 {
		pdf.CellFormat(0, 8, noDataMarker, "", 1, "L", false, 0, "")
	} else {
		headers, grid := buildGrid(rows)

		pageWidth, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colWidth := (pageWidth - left - right) / float64(len(headers))

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(200, 200, 200)
		for _, header := range headers {
			pdf.CellFormat(colWidth, 8, header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetFillColor(245, 245, 220)
		for _, line := range grid {
			for _, text := range line {
				pdf.CellFormat(colWidth, 7, text, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
