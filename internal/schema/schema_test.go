package schema

import (
	"strings"
	"testing"
)

// Documented positional field counts per kind.
var wantFieldCounts = map[Kind]int{
	KindDetail:        30,
	KindMix:           30,
	KindSearchGeneral: 30,
	KindComment:       16,
	KindUser:          25,
	KindSearchUser:    12,
	KindSearchLive:    10,
	KindHot:           8,
}

func TestResolve_AllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		entry, ok := Resolve(kind)
		if !ok {
			t.Fatalf("Resolve(%q) not found", kind)
		}
		if entry.Table == nil {
			t.Fatalf("Resolve(%q) has nil table", kind)
		}
		if entry.SourceType != string(kind) {
			t.Errorf("Resolve(%q).SourceType = %q, want %q", kind, entry.SourceType, kind)
		}
		if got, want := len(entry.Fields), wantFieldCounts[kind]; got != want {
			t.Errorf("Resolve(%q) has %d fields, want %d", kind, got, want)
		}
	}
}

func TestResolve_UnknownKind(t *testing.T) {
	if _, ok := Resolve("bogus"); ok {
		t.Error(`Resolve("bogus") = ok, want not found`)
	}
}

func TestResolve_FieldsAreDeclaredColumns(t *testing.T) {
	for _, kind := range Kinds() {
		entry, _ := Resolve(kind)
		declared := make(map[string]bool, len(entry.Table.Columns))
		for _, c := range entry.Table.Columns {
			declared[c.Name] = true
		}
		for _, f := range entry.Fields {
			if !declared[f] {
				t.Errorf("kind %q field %q is not a column of table %q", kind, f, entry.Table.Name)
			}
		}
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"desc", `"desc"`},
		{"text", `"text"`},
		{"type", `"type"`},
		{"user", `"user"`},
		{"uid", "uid"},
		{"nickname", "nickname"},
		{"source_type", "source_type"},
	}
	for _, tt := range tests {
		if got := QuoteIdentifier(tt.name); got != tt.want {
			t.Errorf("QuoteIdentifier(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTable_QuotedColumn(t *testing.T) {
	if got := Contents.QuotedColumn("desc"); got != `"desc"` {
		t.Errorf(`Contents.QuotedColumn("desc") = %q, want quoted`, got)
	}
	if got := Contents.QuotedColumn("uid"); got != "uid" {
		t.Errorf(`Contents.QuotedColumn("uid") = %q, want bare`, got)
	}
	// Undeclared names fall back to the runtime rule.
	if got := SearchLives.QuotedColumn("user"); got != `"user"` {
		t.Errorf(`SearchLives.QuotedColumn("user") = %q, want quoted fallback`, got)
	}
	if got := SearchLives.QuotedColumn("whatever"); got != "whatever" {
		t.Errorf(`SearchLives.QuotedColumn("whatever") = %q, want bare fallback`, got)
	}
}

func TestConflictTargets(t *testing.T) {
	tests := []struct {
		table *Table
		want  []string
	}{
		{Contents, []string{"id", "source_type"}},
		{Comments, []string{"cid"}},
		{Users, []string{"uid"}},
		{SearchUsers, []string{"uid"}},
		{SearchLives, []string{"room_id"}},
		{HotTrends, []string{"sentence_id", "event_time"}},
	}
	for _, tt := range tests {
		if len(tt.table.ConflictTarget) != len(tt.want) {
			t.Fatalf("%s conflict target = %v, want %v", tt.table.Name, tt.table.ConflictTarget, tt.want)
		}
		for i, c := range tt.want {
			if tt.table.ConflictTarget[i] != c {
				t.Errorf("%s conflict target = %v, want %v", tt.table.Name, tt.table.ConflictTarget, tt.want)
			}
			if !tt.table.IsConflictColumn(c) {
				t.Errorf("%s.IsConflictColumn(%q) = false, want true", tt.table.Name, c)
			}
		}
	}
}

func TestTableByName(t *testing.T) {
	for _, table := range Tables() {
		got, ok := TableByName(table.Name)
		if !ok || got != table {
			t.Errorf("TableByName(%q) = %v, %v", table.Name, got, ok)
		}
	}
	if _, ok := TableByName("nope"); ok {
		t.Error(`TableByName("nope") = ok, want not found`)
	}
}

func TestDDL_Idempotent(t *testing.T) {
	if got := strings.Count(DDL, "CREATE TABLE IF NOT EXISTS"); got != len(Tables()) {
		t.Errorf("DDL has %d idempotent CREATE TABLE statements, want %d", got, len(Tables()))
	}
	if strings.Contains(strings.ReplaceAll(DDL, "IF NOT EXISTS", ""), "CREATE TABLE ") &&
		strings.Count(DDL, "CREATE TABLE ") != strings.Count(DDL, "CREATE TABLE IF NOT EXISTS") {
		t.Error("DDL contains a non-idempotent CREATE TABLE")
	}
	if got := strings.Count(DDL, "CREATE INDEX IF NOT EXISTS"); got == 0 {
		t.Error("DDL creates no indexes")
	}
	for _, table := range Tables() {
		if !strings.Contains(DDL, "CREATE TABLE IF NOT EXISTS "+table.Name) {
			t.Errorf("DDL does not create table %q", table.Name)
		}
	}
}

func TestSheetName(t *testing.T) {
	if got := SheetName("hot_trends"); got != "Hot Trends" {
		t.Errorf(`SheetName("hot_trends") = %q, want "Hot Trends"`, got)
	}
	if got := SheetName("unknown_table"); got != "unknown_table" {
		t.Errorf(`SheetName("unknown_table") = %q, want fallback`, got)
	}
}

func TestColumnLabel(t *testing.T) {
	if got := ColumnLabel("contents", "digg_count"); got != "Likes" {
		t.Errorf(`ColumnLabel("contents", "digg_count") = %q, want "Likes"`, got)
	}
	if got := ColumnLabel("contents", "mystery"); got != "mystery" {
		t.Errorf(`ColumnLabel fallback = %q, want raw name`, got)
	}
	if got := ColumnLabel("nope", "uid"); got != "uid" {
		t.Errorf(`ColumnLabel unknown table = %q, want raw name`, got)
	}
}
