package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/parkgate/enterprise-api/internal/export"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC)

func TestRowKeepsFirstSetOrder(t *testing.T) {
	row := export.NewRow()
	row.Set("Name", "Acme")
	row.Set("Investment", 120.5)
	row.Set("Name", "Acme Ltd")

	assert.Equal(t, []string{"Name", "Investment"}, row.Columns())

	v, ok := row.Value("Name")
	require.True(t, ok)
	assert.Equal(t, "Acme Ltd", v)
}

func TestUnionColumnsFirstSeenOrder(t *testing.T) {
	first := export.NewRow()
	first.Set("A", 1)
	first.Set("B", 2)

	second := export.NewRow()
	second.Set("B", 3)
	second.Set("C", 4)

	third := export.NewRow()
	third.Set("D", 5)
	third.Set("A", 6)

	columns := export.UnionColumns([]*export.Row{first, second, third})
	assert.Equal(t, []string{"A", "B", "C", "D"}, columns)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", export.CellString(nil))
	assert.Equal(t, "hello", export.CellString("hello"))
	assert.Equal(t, "12.5", export.CellString(12.5))
	assert.Equal(t, "1200", export.CellString(1200.0))
	assert.Equal(t, "42", export.CellString(42))
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, export.FormatExcel, f)

	f, err = export.ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, export.FormatPDF, f)

	_, err = export.ParseFormat("csv")
	assert.Error(t, err)
}

func TestGenerateFilenames(t *testing.T) {
	row := export.NewRow()
	row.Set("Name", "Acme")
	rows := []*export.Row{row}

	tests := []struct {
		format   export.Format
		filename string
		mime     string
	}{
		{export.FormatExcel, "Report_20250615_103045.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{export.FormatWord, "Report_20250615_103045.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{export.FormatPDF, "Report_20250615_103045.pdf", "application/pdf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, err := export.Generate(tt.format, "Report", rows, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.filename, doc.Filename)
			assert.Equal(t, tt.mime, doc.ContentType)
			assert.NotEmpty(t, doc.Data)
		})
	}
}

func TestGenerateExcelGrid(t *testing.T) {
	first := export.NewRow()
	first.Set("Company Name", "Acme")
	first.Set("Employee Count", 200)

	// Second row carries a column the first row does not have
	second := export.NewRow()
	second.Set("Company Name", "Globex")
	second.Set("Total Investment", 8000.0)

	doc, err := export.Generate(export.FormatExcel, "Companies", []*export.Row{first, second}, testNow)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Companies")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Company Name", "Employee Count", "Total Investment"}, rows[0])
	assert.Equal(t, "Acme", rows[1][0])
	assert.Equal(t, "200", rows[1][1])
	assert.Equal(t, "Globex", rows[2][0])
	// The cell missing from the second row renders empty
	assert.Equal(t, "8000", rows[2][2])
}

func TestGenerateEmptyRowsPlaceholder(t *testing.T) {
	doc, err := export.Generate(export.FormatExcel, "Empty", nil, testNow)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Empty")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Notice", rows[0][0])
	assert.Equal(t, "No data to export", rows[1][0])

	// The other formats still produce a non-empty document
	for _, format := range []export.Format{export.FormatWord, export.FormatPDF} {
		doc, err := export.Generate(format, "Empty", nil, testNow)
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Data)
	}
}

func TestGenerateLongTitleSheetName(t *testing.T) {
	title := "A Very Long Spreadsheet Title That Exceeds The Limit"
	doc, err := export.Generate(export.FormatExcel, title, nil, testNow)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	defer f.Close()

	// Sheet names cap at 31 characters; the filename keeps the full title
	assert.Equal(t, title[:31], f.GetSheetName(0))
	assert.Contains(t, doc.Filename, title)
}
