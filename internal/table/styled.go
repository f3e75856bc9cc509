package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/tuannm99/novatable/internal/record"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderStyled draws the same content as Render inside a bordered grid,
// for terminals.
func (t *MaterializedTable) RenderStyled() string {
	rows := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		cells := make([]string, 0, row.NumFields())
		for i := 0; i < row.NumFields(); i++ {
			f, err := row.Field(i)
			if err != nil {
				break
			}
			cells = append(cells, record.FormatField(f, t.render.FloatPrecision))
		}
		rows = append(rows, cells)
	}

	tb := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.schema.ColumnNames()...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return tb.String()
}
