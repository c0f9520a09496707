package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ruslano69/databank/internal/record"
	"github.com/ruslano69/databank/internal/schema"
)

// SQL text builders. All pure: table and column names come only from the
// static schema registry, values are always bound positionally.

// buildUpsert assembles the INSERT for one record. fields already excludes
// nil values (record.Fields contract); source_type is appended here because
// it is registry-injected, not caller-supplied. Tables with a conflict
// target get ON CONFLICT ... DO UPDATE SET over the non-target columns;
// tables without one get a plain INSERT.
func buildUpsert(t *schema.Table, sourceType string, fields []record.Field) (string, []any) {
	cols := make([]string, 0, len(fields)+1)
	quoted := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)

	for _, f := range fields {
		cols = append(cols, f.Column)
		quoted = append(quoted, t.QuotedColumn(f.Column))
		args = append(args, f.Value)
	}
	cols = append(cols, "source_type")
	quoted = append(quoted, "source_type")
	args = append(args, sourceType)

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES (%s)",
		t.Name, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	if !t.HasConflictTarget() {
		return b.String(), args
	}

	var updates []string
	for i, c := range cols {
		if t.IsConflictColumn(c) {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", quoted[i], quoted[i]))
	}

	fmt.Fprintf(&b, " ON CONFLICT (%s)", strings.Join(t.ConflictTarget, ", "))
	if len(updates) == 0 {
		// Only key columns present: nothing to update, keep the row as is.
		b.WriteString(" DO NOTHING")
	} else {
		fmt.Fprintf(&b, " DO UPDATE SET %s", strings.Join(updates, ", "))
	}
	return b.String(), args
}

// buildWhere turns an exact-match filter map into an AND-joined predicate
// with positional parameters. Keys are sorted so the generated SQL is
// deterministic. Returns "" and no args for an empty filter.
func buildWhere(t *schema.Table, filters map[string]any) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}

	cols := make([]string, 0, len(filters))
	for c := range filters {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	parts := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for i, c := range cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", t.QuotedColumn(c), i+1))
		args = append(args, filters[c])
	}
	return "WHERE " + strings.Join(parts, " AND "), args
}

// buildSelect assembles a paginated SELECT. orderBy is a trusted,
// pre-validated clause supplied by the caller; LIMIT and OFFSET are bound
// as the trailing positional parameters after the filter values.
func buildSelect(t *schema.Table, filters map[string]any, orderBy string, limit, offset int) (string, []any) {
	where, args := buildWhere(t, filters)

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", t.Name)
	if where != "" {
		b.WriteString(" " + where)
	}
	fmt.Fprintf(&b, " ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return b.String(), args
}

// buildSelectAll is buildSelect without pagination. Use with caution on
// large tables; bounding the result set is the caller's responsibility.
func buildSelectAll(t *schema.Table, filters map[string]any, orderBy string) (string, []any) {
	where, args := buildWhere(t, filters)

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", t.Name)
	if where != "" {
		b.WriteString(" " + where)
	}
	fmt.Fprintf(&b, " ORDER BY %s", orderBy)
	return b.String(), args
}

// buildCount assembles the COUNT companion of buildSelect.
func buildCount(t *schema.Table, filters map[string]any) (string, []any) {
	where, args := buildWhere(t, filters)
	if where == "" {
		return fmt.Sprintf("SELECT COUNT(*) FROM %s", t.Name), nil
	}
	return fmt.Sprintf("SELECT COUNT(*) FROM %s %s", t.Name, where), args
}

// Range is the advanced export filter: an inclusive collection_time window,
// a nickname substring match and an exact source_type.
type Range struct {
	From       string
	To         string
	Nickname   string
	SourceType string
}

// IsZero reports whether no filter is set.
func (r Range) IsZero() bool {
	return r.From == "" && r.To == "" && r.Nickname == "" && r.SourceType == ""
}

// buildSearch assembles the range-filtered SELECT used by exports.
func buildSearch(t *schema.Table, r Range, orderBy string) (string, []any) {
	var parts []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		parts = append(parts, fmt.Sprintf(cond, len(args)))
	}

	if r.From != "" {
		add("collection_time >= $%d", r.From)
	}
	if r.To != "" {
		add("collection_time <= $%d", r.To)
	}
	if r.Nickname != "" {
		add("nickname ILIKE $%d", "%"+r.Nickname+"%")
	}
	if r.SourceType != "" {
		add("source_type = $%d", r.SourceType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", t.Name)
	if len(parts) > 0 {
		b.WriteString(" WHERE " + strings.Join(parts, " AND "))
	}
	fmt.Fprintf(&b, " ORDER BY %s", orderBy)
	return b.String(), args
}
