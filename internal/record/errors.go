package record

import "errors"

var (
	ErrInvalidFieldType     = errors.New("record: invalid field type")
	ErrFieldIndexOutOfRange = errors.New("record: field index out of range")
	ErrFieldValueType       = errors.New("record: value does not match field type")
	ErrRowReleased          = errors.New("record: row already released")
)
