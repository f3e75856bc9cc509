package record

// FieldType is the tag carried by every column and every Field.
type FieldType uint8

const (
	FieldInvalid FieldType = iota
	FieldInteger           // int64
	FieldFloat             // float64
	FieldText              // owned bytes
)

func (t FieldType) String() string {
	switch t {
	case FieldInteger:
		return "INTEGER"
	case FieldFloat:
		return "FLOAT"
	case FieldText:
		return "TEXT"
	default:
		return "INVALID"
	}
}

// Valid reports whether t is one of the scalar kinds a column may carry.
func (t FieldType) Valid() bool {
	return t == FieldInteger || t == FieldFloat || t == FieldText
}
