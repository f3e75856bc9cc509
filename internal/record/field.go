package record

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultFloatPrecision matches the fixed-point "%f" form.
const DefaultFloatPrecision = 6

// Field is a single typed value inside a row. The variant set is closed:
// *IntegerField, *FloatField and *TextField are the only implementations.
type Field interface {
	// Type returns the fixed tag of the field.
	Type() FieldType
	// String formats the value as text.
	String() string
	// SetValue overwrites the value, rejecting Go types that do not match the tag.
	SetValue(v any) error
	// Clone returns an independent copy of the same variant.
	Clone() Field

	release()
}

var (
	_ Field = (*IntegerField)(nil)
	_ Field = (*FloatField)(nil)
	_ Field = (*TextField)(nil)
)

// newField is the only place where a tag picks a variant.
func newField(t FieldType, tracker BufferTracker) (Field, error) {
	switch t {
	case FieldInteger:
		return &IntegerField{}, nil
	case FieldFloat:
		return &FloatField{}, nil
	case FieldText:
		return &TextField{tracker: tracker}, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrInvalidFieldType, uint8(t))
	}
}

// ---- Integer ----

type IntegerField struct {
	value int64
}

func (f *IntegerField) Type() FieldType { return FieldInteger }
func (f *IntegerField) Set(v int64)     { f.value = v }
func (f *IntegerField) Value() int64    { return f.value }
func (f *IntegerField) String() string  { return strconv.FormatInt(f.value, 10) }
func (f *IntegerField) Clone() Field    { return &IntegerField{value: f.value} }
func (f *IntegerField) release()        {}

func (f *IntegerField) SetValue(v any) error {
	x, ok := asInt64(v)
	if !ok {
		return fmt.Errorf("%w: %s field got %T", ErrFieldValueType, FieldInteger, v)
	}
	f.value = x
	return nil
}

// ---- Float ----

type FloatField struct {
	value float64
}

func (f *FloatField) Type() FieldType { return FieldFloat }
func (f *FloatField) Set(v float64)   { f.value = v }
func (f *FloatField) Value() float64  { return f.value }
func (f *FloatField) String() string  { return f.Format(DefaultFloatPrecision) }
func (f *FloatField) Clone() Field    { return &FloatField{value: f.value} }
func (f *FloatField) release()        {}

// Format renders the value in fixed-point notation with prec fractional digits.
func (f *FloatField) Format(prec int) string {
	if prec < 0 {
		prec = DefaultFloatPrecision
	}
	return strconv.FormatFloat(f.value, 'f', prec, 64)
}

func (f *FloatField) SetValue(v any) error {
	x, ok := asFloat64(v)
	if !ok {
		return fmt.Errorf("%w: %s field got %T", ErrFieldValueType, FieldFloat, v)
	}
	f.value = x
	return nil
}

// ---- Text ----

// TextField owns its byte buffer. The length is the slice length, so any
// byte value (zero included) is legal data.
type TextField struct {
	buf     []byte
	owned   bool
	tracker BufferTracker
}

func (f *TextField) Type() FieldType { return FieldText }

// Set replaces the buffer with a private copy of b.
func (f *TextField) Set(b []byte) {
	f.free()
	f.buf = make([]byte, len(b))
	copy(f.buf, b)
	f.owned = true
	f.track().Alloc(len(f.buf))
}

func (f *TextField) SetString(s string) { f.Set([]byte(s)) }

// Value returns the internal buffer, not a copy. It must not be modified
// or kept past the lifetime of the field.
func (f *TextField) Value() []byte { return f.buf }

func (f *TextField) Len() int { return len(f.buf) }

func (f *TextField) String() string { return string(f.buf) }

func (f *TextField) Clone() Field { return f.cloneWith(f.tracker) }

func (f *TextField) cloneWith(tracker BufferTracker) *TextField {
	cp := &TextField{tracker: tracker}
	if f.owned {
		cp.Set(f.buf)
	}
	return cp
}

func (f *TextField) SetValue(v any) error {
	switch x := v.(type) {
	case []byte:
		f.Set(x)
	case string:
		f.SetString(x)
	default:
		return fmt.Errorf("%w: %s field got %T", ErrFieldValueType, FieldText, v)
	}
	return nil
}

func (f *TextField) release() { f.free() }

func (f *TextField) free() {
	if !f.owned {
		return
	}
	f.track().Free(len(f.buf))
	f.buf = nil
	f.owned = false
}

func (f *TextField) track() BufferTracker {
	if f.tracker == nil {
		return NopTracker{}
	}
	return f.tracker
}

// FormatField renders f, using prec fractional digits for floats.
func FormatField(f Field, prec int) string {
	if ff, ok := f.(*FloatField); ok {
		return ff.Format(prec)
	}
	return f.String()
}

// ---- small helpers to accept multiple numeric types on set ----
func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int16:
		return int64(x), true
	case int8:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x), true
		}
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	return 0, false
}
