package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ruslano69/databank/internal/schema"
	"github.com/ruslano69/databank/internal/store"
)

const (
	maxSampledRows = 50 // rows inspected for column width
	maxCellWidth   = 60 // width cap before padding
)

// writeSheet renders rows into a new styled sheet: labeled header row,
// declared column order, frozen top row, widths sized from a sample.
// The extra_data overflow column is skipped.
func writeSheet(f *excelize.File, sheetName string, t *schema.Table, rows []store.Row) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheetName, err)
	}

	columns := exportColumns(t)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2F5496"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, name := range columns {
		cell := columnName(col+1) + "1"
		f.SetCellValue(sheetName, cell, schema.ColumnLabel(t.Name, name))
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for col, name := range columns {
			v, ok := row[name]
			if !ok || v == nil {
				continue
			}
			cell := fmt.Sprintf("%s%d", columnName(col+1), rowIdx+2)
			f.SetCellValue(sheetName, cell, cellValue(v))
		}
	}

	for col, name := range columns {
		width := len(schema.ColumnLabel(t.Name, name))
		sample := rows
		if len(sample) > maxSampledRows {
			sample = sample[:maxSampledRows]
		}
		for _, row := range sample {
			if v, ok := row[name]; ok && v != nil {
				if n := len(fmt.Sprint(cellValue(v))); n > width {
					width = n
				}
			}
		}
		if width > maxCellWidth {
			width = maxCellWidth
		}
		c := columnName(col + 1)
		f.SetColWidth(sheetName, c, c, float64(width+3))
	}

	return f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// exportColumns is the declared column order minus the extra_data overflow.
func exportColumns(t *schema.Table) []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c.Name == "extra_data" {
			continue
		}
		out = append(out, c.Name)
	}
	return out
}

// cellValue converts database values to spreadsheet-friendly scalars.
func cellValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format(time.RFC3339)
	case []byte:
		return string(x)
	case map[string]any, []any:
		return fmt.Sprint(x)
	default:
		return v
	}
}

// columnName converts a 1-based column index to its letter form (1 → A,
// 27 → AA).
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}
