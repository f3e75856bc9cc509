package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchema_ChainedBuilder(t *testing.T) {
	s := NewSchema().
		Field(FieldText, "name").
		Field(FieldInteger, "age").
		Field(FieldFloat, "balance")

	require.Equal(t, 3, s.NumCols())
	require.Equal(t, []string{"name", "age", "balance"}, s.ColumnNames())

	ft, err := s.ColumnType(1)
	require.NoError(t, err)
	require.Equal(t, FieldInteger, ft)

	_, err = s.ColumnType(3)
	require.ErrorIs(t, err, ErrFieldIndexOutOfRange)
	_, err = s.ColumnType(-1)
	require.ErrorIs(t, err, ErrFieldIndexOutOfRange)

	require.NoError(t, s.Validate())
}

func TestSchema_EmptyAndDuplicateNames(t *testing.T) {
	empty := NewSchema()
	require.Equal(t, 0, empty.NumCols())
	require.NoError(t, empty.Validate())

	dup := NewSchema().Field(FieldInteger, "x").Field(FieldText, "x")
	require.Equal(t, 2, dup.NumCols())
	require.NoError(t, dup.Validate())
}

func TestSchema_ValidateInvalidTag(t *testing.T) {
	s := NewSchema().Field(FieldInteger, "id").Field(FieldInvalid, "bad")
	err := s.Validate()
	require.ErrorIs(t, err, ErrInvalidFieldType)
	require.Contains(t, err.Error(), "bad")
}

func TestSchema_Clone(t *testing.T) {
	s := NewSchema().Field(FieldInteger, "id")
	cp := s.Clone()
	s.Field(FieldText, "name")
	s.Cols[0].Name = "changed"

	require.Equal(t, 1, cp.NumCols())
	require.Equal(t, "id", cp.Cols[0].Name)
}
