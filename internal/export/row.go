package export

import (
	"fmt"
	"strconv"
)

// Row is an ordered label → value mapping. Columns keep first-set order;
// setting an existing column overwrites the value in place. Different rows in
// one export may carry different column sets.
type Row struct {
	keys   []string
	values map[string]interface{}
}

func NewRow() *Row {
	return &Row{values: make(map[string]interface{})}
}

// Set adds or overwrites a column value
func (r *Row) Set(column string, value interface{}) {
	if _, ok := r.values[column]; !ok {
		r.keys = append(r.keys, column)
	}
	r.values[column] = value
}

// Value returns the column value and whether the column is present
func (r *Row) Value(column string) (interface{}, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Columns returns the column labels in first-set order
func (r *Row) Columns() []string {
	return r.keys
}

// Len returns the number of columns
func (r *Row) Len() int {
	return len(r.keys)
}

// UnionColumns merges the column sets of all rows in stable first-seen order.
// Columns absent from a row render as empty cells in the flat table.
func UnionColumns(rows []*Row) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, col := range row.Columns() {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	return columns
}

// CellString renders a cell value as text. Numbers drop trailing zeros.
func CellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// buildGrid flattens rows into a header line plus one text line per row,
// using the union header policy
func buildGrid(rows []*Row) ([]string, [][]string) {
	headers := UnionColumns(rows)
	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(headers))
		for i, col := range headers {
			if v, ok := row.Value(col); ok {
				line[i] = CellString(v)
			}
		}
		grid = append(grid, line)
	}
	return headers, grid
}
