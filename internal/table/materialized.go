package table

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	locking "github.com/tuannm99/novatable/internal/lock"
	"github.com/tuannm99/novatable/internal/record"
)

// MaterializedTable lives entirely in memory and only grows: rows are
// appended in insertion order and never changed or removed.
// It is not safe for concurrent use; callers serialize Insert and Render.
type MaterializedTable struct {
	schema  record.Schema
	rows    []*record.Row
	logger  *slog.Logger
	render  RenderConfig
	tracker record.BufferTracker
	ref     *locking.RefCount
}

type Option func(*MaterializedTable)

func WithLogger(l *slog.Logger) Option {
	return func(t *MaterializedTable) {
		if l != nil {
			t.logger = l
		}
	}
}

func WithRenderConfig(c RenderConfig) Option {
	return func(t *MaterializedTable) { t.render = c }
}

// WithTracker makes the table's own row copies report buffer traffic to tr.
func WithTracker(tr record.BufferTracker) Option {
	return func(t *MaterializedTable) { t.tracker = tr }
}

// NewMaterialized creates an empty table. The schema is copied, later
// changes to the caller's schema do not affect the table.
func NewMaterialized(schema record.Schema, opts ...Option) (*MaterializedTable, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("new materialized table: %w", err)
	}
	t := &MaterializedTable{
		schema: schema.Clone(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		render: DefaultRenderConfig(),
		ref:    locking.NewRefCount(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *MaterializedTable) Schema() record.Schema { return t.schema.Clone() }

func (t *MaterializedTable) Len() int { return len(t.rows) }

// Insert validates row against the schema and appends an independent copy.
// Validation finishes before anything is stored, so a rejected row leaves
// the table untouched. The caller keeps ownership of row.
func (t *MaterializedTable) Insert(row *record.Row) error {
	if row == nil {
		return ErrNilRow
	}
	if !t.ref.Live() {
		return ErrTableClosed
	}
	if row.Released() {
		return record.ErrRowReleased
	}
	if err := t.check(row); err != nil {
		t.logger.Warn("insert rejected", "error", err)
		return err
	}

	var opts []record.RowOption
	if t.tracker != nil {
		opts = append(opts, record.WithTracker(t.tracker))
	}
	stored, err := row.Clone(opts...)
	if err != nil {
		return err
	}
	stored.SetPosition(int64(len(t.rows)))
	t.rows = append(t.rows, stored)

	t.logger.Debug("row inserted", "position", stored.Position(), "rows", len(t.rows))
	return nil
}

func (t *MaterializedTable) check(row *record.Row) error {
	if row.NumFields() != t.schema.NumCols() {
		return fmt.Errorf("%w: row has %d fields, schema has %d columns",
			ErrSchemaSizeMismatch, row.NumFields(), t.schema.NumCols())
	}
	for i, col := range t.schema.Cols {
		ft, err := row.FieldType(i)
		if err != nil {
			return err
		}
		if ft != col.Type {
			return fmt.Errorf("%w: field %d (%q) is %s, column is %s",
				ErrSchemaTypeMismatch, i, col.Name, ft, col.Type)
		}
	}
	return nil
}

// Scan visits every stored row in insertion order. fn receives a copy it
// owns; the copy is released after fn returns. A non-nil error from fn
// stops the scan and is returned.
func (t *MaterializedTable) Scan(fn func(pos int64, row *record.Row) error) error {
	if !t.ref.Live() {
		return ErrTableClosed
	}
	for _, stored := range t.rows {
		cp, err := stored.Clone()
		if err != nil {
			return err
		}
		err = fn(stored.Position(), cp)
		_ = cp.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

// Render returns the header line, a rule line and one line per row.
func (t *MaterializedTable) Render() string {
	var sb strings.Builder
	for _, name := range t.schema.ColumnNames() {
		sb.WriteString(name)
		sb.WriteString(t.render.ColumnSeparator)
	}
	sb.WriteByte('\n')
	sb.WriteString(t.render.Rule)
	sb.WriteByte('\n')
	for _, row := range t.rows {
		sb.WriteString(row.Format(t.render.FieldSeparator, t.render.FloatPrecision))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Close releases every stored row. Closing twice is a no-op.
func (t *MaterializedTable) Close() error {
	last, err := t.ref.Release()
	if err != nil || !last {
		return nil
	}

	var errs []error
	for _, row := range t.rows {
		if err := row.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	released := len(t.rows)
	t.rows = nil
	t.logger.Debug("table closed", "rows_released", released)
	return errors.Join(errs...)
}
