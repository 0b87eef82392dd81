// Package export turns flat row data into downloadable xlsx, docx, and pdf
// documents.
package export

import (
	"fmt"
	"time"
)

// Format selects the target document type
type Format string

const (
	FormatExcel Format = "excel"
	FormatWord  Format = "word"
	FormatPDF   Format = "pdf"
)

// ParseFormat maps the request format key to a Format. An empty key defaults
// to excel, matching the legacy behavior.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatExcel, FormatWord, FormatPDF:
		return Format(s), nil
	case "":
		return FormatExcel, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Document is a generated file ready to stream as an attachment
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"

	// placeholder cell written when there is nothing to export
	noDataMarker = "No data to export"
	noDataHeader = "Notice"
)

// Generate builds the document for one format. Empty rows produce a single
// placeholder cell in every format. Headers are the union of all row columns
// in first-seen order; cells missing from a row render empty.
func Generate(format Format, title string, rows []*Row, now time.Time) (*Document, error) {
	switch format {
	case FormatExcel:
		data, err := writeExcel(title, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to build spreadsheet: %w", err)
		}
		return newDocument(title, "xlsx", mimeXLSX, data, now), nil
	case FormatWord:
		data, err := writeWord(title, rows, now)
		if err != nil {
			return nil, fmt.Errorf("failed to build document: %w", err)
		}
		return newDocument(title, "docx", mimeDOCX, data, now), nil
	case FormatPDF:
		data, err := writePDF(title, rows, now)
		if err != nil {
			return nil, fmt.Errorf("failed to build pdf: %w", err)
		}
		return newDocument(title, "pdf", mimePDF, data, now), nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

func newDocument(title, ext, contentType string, data []byte, now time.Time) *Document {
	return &Document{
		Filename:    fmt.Sprintf("%s_%s.%s", title, now.Format("20060102_150405"), ext),
		ContentType: contentType,
		Data:        data,
	}
}
