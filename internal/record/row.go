package record

import (
	"fmt"
	"strings"

	locking "github.com/tuannm99/novatable/internal/lock"
)

// Row is an ordered tuple of fields built from a Schema.
// A row owns its fields; Release frees them exactly once.
type Row struct {
	fields  []Field
	tracker BufferTracker
	ref     *locking.RefCount

	// position is reserved for storage-backed tables (physical offset).
	// The in-memory table stores the ordinal here but never reads it back.
	position int64
}

type RowOption func(*rowOptions)

type rowOptions struct {
	tracker BufferTracker
}

// WithTracker makes text buffers of the row report to t.
func WithTracker(t BufferTracker) RowOption {
	return func(o *rowOptions) {
		if t != nil {
			o.tracker = t
		}
	}
}

// NewRow allocates one zero-valued field per schema column.
// An unknown column tag aborts construction with ErrInvalidFieldType.
func NewRow(s Schema, opts ...RowOption) (*Row, error) {
	o := rowOptions{tracker: NopTracker{}}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Row{
		fields:  make([]Field, 0, s.NumCols()),
		tracker: o.tracker,
		ref:     locking.NewRefCount(),
	}
	for i, col := range s.Cols {
		f, err := newField(col.Type, o.tracker)
		if err != nil {
			r.releaseFields()
			return nil, fmt.Errorf("new row: column %d (%q): %w", i, col.Name, err)
		}
		r.fields = append(r.fields, f)
	}
	return r, nil
}

// MustNewRow is NewRow for schemas known to be valid.
func MustNewRow(s Schema, opts ...RowOption) *Row {
	r, err := NewRow(s, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Clone returns a deep copy: every field is duplicated, text buffers included.
// Options override the tracker inherited from r.
func (r *Row) Clone(opts ...RowOption) (*Row, error) {
	if !r.ref.Live() {
		return nil, ErrRowReleased
	}
	o := rowOptions{tracker: r.tracker}
	for _, opt := range opts {
		opt(&o)
	}

	cp := &Row{
		fields:   make([]Field, len(r.fields)),
		tracker:  o.tracker,
		ref:      locking.NewRefCount(),
		position: r.position,
	}
	for i, f := range r.fields {
		if tf, ok := f.(*TextField); ok {
			cp.fields[i] = tf.cloneWith(o.tracker)
			continue
		}
		cp.fields[i] = f.Clone()
	}
	return cp, nil
}

func (r *Row) NumFields() int { return len(r.fields) }

// Field returns the field handle at position i. The handle stays owned by r.
func (r *Row) Field(i int) (Field, error) {
	if !r.ref.Live() {
		return nil, ErrRowReleased
	}
	if i < 0 || i >= len(r.fields) {
		return nil, fmt.Errorf("%w: field %d of %d", ErrFieldIndexOutOfRange, i, len(r.fields))
	}
	return r.fields[i], nil
}

func (r *Row) FieldType(i int) (FieldType, error) {
	f, err := r.Field(i)
	if err != nil {
		return FieldInvalid, err
	}
	return f.Type(), nil
}

// Set stores v into field i, checking v's Go type against the field's tag.
func (r *Row) Set(i int, v any) error {
	f, err := r.Field(i)
	if err != nil {
		return err
	}
	if err := f.SetValue(v); err != nil {
		return fmt.Errorf("field %d: %w", i, err)
	}
	return nil
}

func (r *Row) SetInt(i int, v int64) error {
	f, err := r.Field(i)
	if err != nil {
		return err
	}
	x, ok := f.(*IntegerField)
	if !ok {
		return fmt.Errorf("field %d: %w: want %s, field is %s", i, ErrFieldValueType, FieldInteger, f.Type())
	}
	x.Set(v)
	return nil
}

func (r *Row) SetFloat(i int, v float64) error {
	f, err := r.Field(i)
	if err != nil {
		return err
	}
	x, ok := f.(*FloatField)
	if !ok {
		return fmt.Errorf("field %d: %w: want %s, field is %s", i, ErrFieldValueType, FieldFloat, f.Type())
	}
	x.Set(v)
	return nil
}

func (r *Row) SetText(i int, v []byte) error {
	f, err := r.Field(i)
	if err != nil {
		return err
	}
	x, ok := f.(*TextField)
	if !ok {
		return fmt.Errorf("field %d: %w: want %s, field is %s", i, ErrFieldValueType, FieldText, f.Type())
	}
	x.Set(v)
	return nil
}

func (r *Row) SetString(i int, v string) error {
	return r.SetText(i, []byte(v))
}

func (r *Row) Position() int64 { return r.position }

func (r *Row) SetPosition(pos int64) { r.position = pos }

// Released reports whether Release has already run.
func (r *Row) Released() bool { return !r.ref.Live() }

// Release frees every field buffer. Releasing twice returns ErrRowReleased
// and frees nothing.
func (r *Row) Release() error {
	last, err := r.ref.Release()
	if err != nil {
		return ErrRowReleased
	}
	if last {
		r.releaseFields()
	}
	return nil
}

func (r *Row) releaseFields() {
	for _, f := range r.fields {
		f.release()
	}
	r.fields = nil
}

// Format joins the formatted fields with sep, floats using prec digits.
func (r *Row) Format(sep string, prec int) string {
	parts := make([]string, len(r.fields))
	for i, f := range r.fields {
		parts[i] = FormatField(f, prec)
	}
	return strings.Join(parts, sep)
}

func (r *Row) String() string {
	return r.Format(", ", DefaultFloatPrecision)
}
