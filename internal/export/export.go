// Package export renders data bank tables into styled XLSX workbooks.
// It is a pure formatting consumer: all data access goes through the
// Source interface, which the store satisfies.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/ruslano69/databank/internal/schema"
	"github.com/ruslano69/databank/internal/store"
)

// Source is the slice of store behaviour the exporter needs.
type Source interface {
	GetAll(ctx context.Context, table string, filters map[string]any, orderBy string) ([]store.Row, error)
	Search(ctx context.Context, table string, r store.Range, orderBy string) ([]store.Row, error)
}

// Exporter writes workbook files from a data source.
type Exporter struct {
	src Source
}

// New creates an Exporter over src.
func New(src Source) *Exporter {
	return &Exporter{src: src}
}

// ExportAll writes every non-empty table as its own sheet of a single
// workbook. Returns the total number of exported rows; zero rows means no
// file was written.
func (e *Exporter) ExportAll(ctx context.Context, path string) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	total := 0
	for _, t := range schema.Tables() {
		rows, err := e.src.GetAll(ctx, t.Name, nil, "")
		if err != nil {
			return 0, fmt.Errorf("export %s: %w", t.Name, err)
		}
		if len(rows) == 0 {
			continue
		}
		if err := writeSheet(f, schema.SheetName(t.Name), t, rows); err != nil {
			return 0, fmt.Errorf("export %s: %w", t.Name, err)
		}
		total += len(rows)
	}

	if total == 0 {
		log.Warn().Msg("data bank is empty, nothing to export")
		return 0, nil
	}

	f.DeleteSheet("Sheet1")
	if err := save(f, path); err != nil {
		return 0, err
	}
	log.Info().Int("rows", total).Str("path", path).Msg("export complete")
	return total, nil
}

// ExportTable writes one table, optionally filtered by exact-match column
// values, to its own workbook.
func (e *Exporter) ExportTable(ctx context.Context, table, path string, filters map[string]any) (int, error) {
	t, ok := schema.TableByName(table)
	if !ok {
		return 0, fmt.Errorf("%w: %q", store.ErrUnknownTable, table)
	}

	rows, err := e.src.GetAll(ctx, table, filters, "")
	if err != nil {
		return 0, fmt.Errorf("export %s: %w", table, err)
	}
	if len(rows) == 0 {
		log.Warn().Str("table", table).Msg("no data to export")
		return 0, nil
	}

	return len(rows), e.writeWorkbook(t, path, rows)
}

// ExportRange writes one table filtered by a collection-time window,
// nickname substring and source_type to its own workbook.
func (e *Exporter) ExportRange(ctx context.Context, table, path string, r store.Range) (int, error) {
	t, ok := schema.TableByName(table)
	if !ok {
		return 0, fmt.Errorf("%w: %q", store.ErrUnknownTable, table)
	}

	rows, err := e.src.Search(ctx, table, r, "")
	if err != nil {
		return 0, fmt.Errorf("export %s: %w", table, err)
	}
	if len(rows) == 0 {
		log.Warn().Str("table", table).Msg("no data matches the given filters")
		return 0, nil
	}

	return len(rows), e.writeWorkbook(t, path, rows)
}

func (e *Exporter) writeWorkbook(t *schema.Table, path string, rows []store.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, schema.SheetName(t.Name), t, rows); err != nil {
		return fmt.Errorf("export %s: %w", t.Name, err)
	}
	f.DeleteSheet("Sheet1")
	if err := save(f, path); err != nil {
		return err
	}
	log.Info().Int("rows", len(rows)).Str("table", t.Name).Str("path", path).Msg("export complete")
	return nil
}

func save(f *excelize.File, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Filename returns a timestamped workbook name for the given prefix.
func Filename(prefix string) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_150405"))
}
