package export

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ruslano69/databank/internal/store"
)

// stubSource serves canned rows per table without a database.
type stubSource struct {
	rows map[string][]store.Row
}

func (s *stubSource) GetAll(_ context.Context, table string, _ map[string]any, _ string) ([]store.Row, error) {
	return s.rows[table], nil
}

func (s *stubSource) Search(_ context.Context, table string, _ store.Range, _ string) ([]store.Row, error) {
	return s.rows[table], nil
}

func hotRows() []store.Row {
	return []store.Row{
		{
			"pk_id":       int32(1),
			"source_type": "hot",
			"created_at":  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			"position":    int32(1),
			"word":        "topic one",
			"hot_value":   int32(900),
			"sentence_id": "s1",
			"extra_data":  map[string]any{"hidden": true},
		},
		{
			"pk_id":       int32(2),
			"source_type": "hot",
			"position":    int32(2),
			"word":        "topic two",
			"sentence_id": "s2",
		},
	}
}

func TestExportTable_WritesStyledSheet(t *testing.T) {
	src := &stubSource{rows: map[string][]store.Row{"hot_trends": hotRows()}}
	path := filepath.Join(t.TempDir(), "hot.xlsx")

	n, err := New(src).ExportTable(context.Background(), "hot_trends", path, nil)
	if err != nil {
		t.Fatalf("ExportTable() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ExportTable() = %d rows, want 2", n)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != "Hot Trends" {
		t.Errorf("sheet name = %q, want %q", got, "Hot Trends")
	}

	rows, err := f.GetRows("Hot Trends")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("sheet has %d rows, want header + 2 data rows", len(rows))
	}

	// Header uses human labels; 3 meta + 8 payload columns, extra_data skipped.
	header := rows[0]
	if len(header) != 11 {
		t.Errorf("header has %d columns, want 11 (extra_data excluded)", len(header))
	}
	if header[0] != "ID" || header[3] != "Rank" || header[4] != "Content" {
		t.Errorf("header = %v, want labeled columns", header)
	}
	for _, h := range header {
		if h == "extra_data" {
			t.Error("extra_data column must not be exported")
		}
	}

	if rows[1][4] != "topic one" {
		t.Errorf("first data row word = %q, want %q", rows[1][4], "topic one")
	}
	// Timestamps are rendered as RFC3339 strings.
	if rows[1][2] != "2024-06-01T12:00:00Z" {
		t.Errorf("created_at cell = %q, want RFC3339", rows[1][2])
	}
}

func TestExportTable_UnknownTable(t *testing.T) {
	src := &stubSource{}
	_, err := New(src).ExportTable(context.Background(), "nope", filepath.Join(t.TempDir(), "x.xlsx"), nil)
	if err == nil {
		t.Fatal("ExportTable(unknown table) error = nil")
	}
}

func TestExportTable_EmptyWritesNothing(t *testing.T) {
	src := &stubSource{}
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	n, err := New(src).ExportTable(context.Background(), "users", path, nil)
	if err != nil {
		t.Fatalf("ExportTable() error = %v", err)
	}
	if n != 0 {
		t.Errorf("ExportTable() = %d rows, want 0", n)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty export must not create a file")
	}
}

func TestExportAll_MultiSheet(t *testing.T) {
	src := &stubSource{rows: map[string][]store.Row{
		"hot_trends": hotRows(),
		"users":      {{"pk_id": int32(1), "uid": "u1", "nickname": "alice"}},
	}}
	path := filepath.Join(t.TempDir(), "all.xlsx")

	n, err := New(src).ExportAll(context.Background(), path)
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}
	if n != 3 {
		t.Errorf("ExportAll() = %d rows, want 3", n)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("workbook has sheets %v, want only the two non-empty tables", sheets)
	}
	for _, want := range []string{"Users", "Hot Trends"} {
		if idx, _ := f.GetSheetIndex(want); idx < 0 {
			t.Errorf("workbook missing sheet %q (have %v)", want, sheets)
		}
	}
}

func TestExportAll_EmptyBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.xlsx")
	n, err := New(&stubSource{}).ExportAll(context.Background(), path)
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}
	if n != 0 {
		t.Errorf("ExportAll() = %d rows, want 0", n)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty export must not create a file")
	}
}

func TestExportRange_UsesSearch(t *testing.T) {
	src := &stubSource{rows: map[string][]store.Row{
		"contents": {{"pk_id": int32(1), "id": "v1", "nickname": "alice"}},
	}}
	path := filepath.Join(t.TempDir(), "range.xlsx")

	n, err := New(src).ExportRange(context.Background(), "contents", path, store.Range{Nickname: "ali"})
	if err != nil {
		t.Fatalf("ExportRange() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ExportRange() = %d rows, want 1", n)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestFilename(t *testing.T) {
	got := Filename("databank_export")
	matched, err := regexp.MatchString(`^databank_export_\d{8}_\d{6}\.xlsx$`, got)
	if err != nil || !matched {
		t.Errorf("Filename() = %q, want timestamped .xlsx name", got)
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"}, {2, "B"}, {26, "Z"}, {27, "AA"}, {52, "AZ"}, {53, "BA"},
	}
	for _, tt := range tests {
		if got := columnName(tt.col); got != tt.want {
			t.Errorf("columnName(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}
