package table

import (
	"errors"

	"github.com/tuannm99/novatable/internal/record"
)

var (
	ErrSchemaSizeMismatch = errors.New("table: row field count does not match schema")
	ErrSchemaTypeMismatch = errors.New("table: row field type does not match schema")
	ErrNilRow             = errors.New("table: nil row")
	ErrTableClosed        = errors.New("table: table is closed")
)

// Table is the capability every table kind offers: a fixed schema,
// schema-checked inserts and a deterministic text dump.
// A storage-backed table must satisfy the same contract.
type Table interface {
	Schema() record.Schema
	Insert(row *record.Row) error
	Render() string
}

var _ Table = (*MaterializedTable)(nil)

// RenderConfig controls the text form produced by Render.
type RenderConfig struct {
	ColumnSeparator string
	FieldSeparator  string
	Rule            string
	FloatPrecision  int
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ColumnSeparator: " | ",
		FieldSeparator:  ", ",
		Rule:            "--------------------------------------------",
		FloatPrecision:  record.DefaultFloatPrecision,
	}
}
