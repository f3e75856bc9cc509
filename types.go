package novatable

import (
	"github.com/tuannm99/novatable/internal/record"
	"github.com/tuannm99/novatable/internal/table"
)

// Package novatable is the top-level facade for the table engine.
type (
	FieldType         = record.FieldType
	Field             = record.Field
	Schema            = record.Schema
	Row               = record.Row
	Table             = table.Table
	MaterializedTable = table.MaterializedTable
)

const (
	FieldInteger = record.FieldInteger
	FieldFloat   = record.FieldFloat
	FieldText    = record.FieldText
)

var (
	NewSchema       = record.NewSchema
	NewRow          = record.NewRow
	NewMaterialized = table.NewMaterialized
)
