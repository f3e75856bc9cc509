package record

import "fmt"

type Column struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// Schema is the row template of a table: columns are addressed by position,
// names are only used for display and may repeat.
type Schema struct {
	Cols []Column `json:"cols"`
}

func NewSchema() *Schema {
	return &Schema{}
}

// Field appends one column and returns the same schema so a whole template
// can be declared in one chained expression.
func (s *Schema) Field(t FieldType, name string) *Schema {
	s.Cols = append(s.Cols, Column{Name: name, Type: t})
	return s
}

func (s Schema) NumCols() int { return len(s.Cols) }

func (s Schema) ColumnType(i int) (FieldType, error) {
	if i < 0 || i >= len(s.Cols) {
		return FieldInvalid, fmt.Errorf("%w: column %d of %d", ErrFieldIndexOutOfRange, i, len(s.Cols))
	}
	return s.Cols[i].Type, nil
}

func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Cols))
	for i, c := range s.Cols {
		names[i] = c.Name
	}
	return names
}

// Validate rejects columns whose tag is not a known scalar kind.
func (s Schema) Validate() error {
	for i, c := range s.Cols {
		if !c.Type.Valid() {
			return fmt.Errorf("%w: column %d (%q) has tag %d", ErrInvalidFieldType, i, c.Name, uint8(c.Type))
		}
	}
	return nil
}

// Clone returns a schema that shares no column storage with s.
func (s Schema) Clone() Schema {
	cols := make([]Column, len(s.Cols))
	copy(cols, s.Cols)
	return Schema{Cols: cols}
}
