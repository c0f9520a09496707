// Package record defines one typed struct per scraped record kind and the
// explicit struct→column mapping the store writes from. Nullable columns are
// pointer fields; a nil field is simply absent from the mapping, so it is
// never written and never overwrites a stored value.
package record

import (
	"errors"

	"github.com/ruslano69/databank/internal/schema"
)

// ErrUnknownKind is returned when a record kind has no registry entry.
var ErrUnknownKind = errors.New("unknown record kind")

// Field is one column→value pair destined for a table.
type Field struct {
	Column string
	Value  any
}

// Record is a saveable entity. Fields returns the non-nil columns in the
// table's declared order; the mapping is written out field by field in each
// implementation so that it is checked at compile time.
type Record interface {
	Kind() schema.Kind
	Fields() []Field
}

func appendText(fs []Field, column string, v *string) []Field {
	if v == nil {
		return fs
	}
	return append(fs, Field{Column: column, Value: *v})
}

func appendCount(fs []Field, column string, v *int64) []Field {
	if v == nil {
		return fs
	}
	return append(fs, Field{Column: column, Value: *v})
}
