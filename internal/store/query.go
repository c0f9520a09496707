package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/ruslano69/databank/internal/schema"
)

// DefaultOrder is the ordering applied when the caller passes none:
// newest first by insertion timestamp.
const DefaultOrder = "created_at DESC"

// Row is one result row keyed by column name.
type Row = map[string]any

func resolveTable(name string) (*schema.Table, error) {
	t, ok := schema.TableByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return t, nil
}

// Query returns up to limit rows from table matching the exact-match
// filters, offset for pagination. orderBy is a trusted pre-validated
// clause; pass "" for the default newest-first ordering.
func (s *Store) Query(ctx context.Context, table string, filters map[string]any, limit, offset int, orderBy string) ([]Row, error) {
	pool, err := s.acquire()
	if err != nil {
		return nil, err
	}
	t, err := resolveTable(table)
	if err != nil {
		return nil, err
	}
	if orderBy == "" {
		orderBy = DefaultOrder
	}

	sql, args := buildSelect(t, filters, orderBy, limit, offset)
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("query failed")
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return collectRows(rows, table)
}

// GetAll returns every row matching the filters, without pagination.
// Use with caution on large tables.
func (s *Store) GetAll(ctx context.Context, table string, filters map[string]any, orderBy string) ([]Row, error) {
	pool, err := s.acquire()
	if err != nil {
		return nil, err
	}
	t, err := resolveTable(table)
	if err != nil {
		return nil, err
	}
	if orderBy == "" {
		orderBy = DefaultOrder
	}

	sql, args := buildSelectAll(t, filters, orderBy)
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("query failed")
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return collectRows(rows, table)
}

// Search returns every row of table inside the given range filter, used by
// the spreadsheet exporter for date/nickname/source_type selections.
func (s *Store) Search(ctx context.Context, table string, r Range, orderBy string) ([]Row, error) {
	pool, err := s.acquire()
	if err != nil {
		return nil, err
	}
	t, err := resolveTable(table)
	if err != nil {
		return nil, err
	}
	if orderBy == "" {
		orderBy = DefaultOrder
	}

	sql, args := buildSearch(t, r, orderBy)
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("search failed")
		return nil, fmt.Errorf("search %s: %w", table, err)
	}
	return collectRows(rows, table)
}

// Count returns the number of rows in table matching the filters.
func (s *Store) Count(ctx context.Context, table string, filters map[string]any) (int64, error) {
	pool, err := s.acquire()
	if err != nil {
		return 0, err
	}
	t, err := resolveTable(table)
	if err != nil {
		return 0, err
	}

	sql, args := buildCount(t, filters)
	var n int64
	if err := pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		log.Error().Err(err).Str("table", table).Msg("count failed")
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Statistics returns the row count of every known table, in the registry's
// fixed table order expressed as a map of table name to count.
func (s *Store) Statistics(ctx context.Context) (map[string]int64, error) {
	if _, err := s.acquire(); err != nil {
		return nil, err
	}

	stats := make(map[string]int64, len(schema.Tables()))
	for _, t := range schema.Tables() {
		n, err := s.Count(ctx, t.Name, nil)
		if err != nil {
			return nil, err
		}
		stats[t.Name] = n
	}
	return stats, nil
}

// collectRows drains a result set into name-keyed maps. The connection is
// released when the rows are closed, on every path.
func collectRows(rows pgx.Rows, table string) ([]Row, error) {
	defer rows.Close()

	fds := rows.FieldDescriptions()
	var out []Row
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read %s row: %w", table, err)
		}
		m := make(Row, len(fds))
		for i, fd := range fds {
			m[fd.Name] = vals[i]
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table, err)
	}
	return out, nil
}
