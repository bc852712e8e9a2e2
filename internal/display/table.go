package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Placeholder is printed in place of an absent value.
const Placeholder = "N/A"

// EmptyMessage is printed instead of a table when there is nothing to show.
const EmptyMessage = "No records found."

// Record is one table row. Columns names the cells returned by Values, in
// the same order; a nil value is shown as Placeholder.
type Record interface {
	Columns() []string
	Values() []*string
}

// Table renders records as a bordered table. The header defaults to the
// first record's columns; explicit headers select and order columns by name.
// With no records only EmptyMessage is printed.
func (r *Renderer) Table(records []Record, headers ...string) {
	if len(records) == 0 {
		fmt.Fprintln(r.out, r.styles.Notice.Render(EmptyMessage))
		return
	}
	if len(headers) == 0 {
		headers = records[0].Columns()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Cell
		}).
		Headers(headers...)

	for _, rec := range records {
		t.Row(cells(rec, headers)...)
	}
	fmt.Fprintln(r.out, t.String())
}

func cells(rec Record, headers []string) []string {
	byName := make(map[string]*string, len(headers))
	values := rec.Values()
	for i, col := range rec.Columns() {
		if i < len(values) {
			byName[col] = values[i]
		}
	}

	row := make([]string, len(headers))
	for i, h := range headers {
		if v := byName[h]; v != nil {
			row[i] = *v
		} else {
			row[i] = Placeholder
		}
	}
	return row
}

// Records adapts a typed slice to the Record interface.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
