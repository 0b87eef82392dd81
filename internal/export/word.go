package export

import (
	"bytes"
	"time"

	"github.com/fumiama/go-docx"
)

func writeWord(title string, rows []*Row, now time.Time) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText(title).Size("28").Bold()
	doc.AddParagraph().AddText("Exported: " + now.Format("2006-01-02 15:04:05"))
	doc.AddParagraph()

	if len(rows) == 0 {
		doc.AddParagraph().AddText(noDataMarker)
	} else {
		headers, grid := buildGrid(rows)

		table := doc.AddTable(len(grid)+1, len(headers), 0, nil)
		for i, header := range headers {
			table.TableRows[0].TableCells[i].AddParagraph().AddText(header).Bold()
		}
		for rowIdx, line := range grid {
			for colIdx, text := range line {
				table.TableRows[rowIdx+1].TableCells[colIdx].AddParagraph().AddText(text)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
