package export

import (
	"github.com/xuri/excelize/v2"
)

// excel sheet names are capped at 31 characters
const maxSheetNameLen = 31

func writeExcel(title string, rows []*Row) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := title
	if len(sheet) > maxSheetNameLen {
		sheet = sheet[:maxSheetNameLen]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	headers, grid := buildGrid(rows)
	if len(rows) == 0 {
		headers = []string{noDataHeader}
		grid = [][]string{{noDataMarker}}
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, line := range grid {
		for colIdx, text := range line {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, text); err != nil {
				return nil, err
			}
		}
	}

	// Column width follows the widest cell observed in that column, plus
	// padding, computed after the sheet is populated
	for i, header := range headers {
		width := len(header)
		for _, line := range grid {
			if len(line[i]) > width {
				width = len(line[i])
			}
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width+2)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
