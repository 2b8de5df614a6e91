// Package texttable renders declaratively defined tables as
// aligned plain text, for logs, terminals, and debug output.
// Columns are padded to the widest cell by display width.
package texttable

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	tablefor "github.com/cmingxu/table-for"
)

// Writer renders tables declared for record type T as plain text.
//
// Writer is immutable after creation, all With* methods return
// a new Writer with the modified configuration.
type Writer[T any] struct {
	helpers   tablefor.Helpers
	headerRow bool
	columnSep string
}

// NewWriter creates a Writer for record type T with a header row,
// a two space column separator, and no helpers.
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		headerRow: true,
		columnSep: "  ",
	}
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// WithHelpers returns a new writer whose table definitions resolve
// Helper column options against helpers.
func (w *Writer[T]) WithHelpers(helpers tablefor.Helpers) *Writer[T] {
	mod := w.clone()
	mod.helpers = helpers
	return mod
}

// WithHeaderRow returns a new writer that writes the column names
// and a dashed rule before the body rows if headerRow is true.
func (w *Writer[T]) WithHeaderRow(headerRow bool) *Writer[T] {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithColumnSep returns a new writer using sep between columns.
func (w *Writer[T]) WithColumnSep(sep string) *Writer[T] {
	mod := w.clone()
	mod.columnSep = sep
	return mod
}

// Write renders records as an aligned text table to dest.
// Cell values marked as raw HTML are written like any other value,
// text output has no escaping.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, records []T, define tablefor.DefineFunc[T]) error {
	if define == nil {
		return tablefor.ErrNilDefineFunc
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	def := tablefor.NewDefinition[T](w.helpers)
	define(def)
	if err := def.Err(); err != nil {
		return err
	}
	columns := def.Columns()

	// All rows are formatted up front because column widths
	// depend on every cell.
	var rows [][]string
	if w.headerRow {
		header := make([]string, len(columns))
		for i, col := range columns {
			header[i] = col.Name()
		}
		rows = append(rows, header)
	}
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := make([]string, len(columns))
		for i, col := range columns {
			str, _, err := col.Format(ctx, record)
			if err != nil {
				return err
			}
			row[i] = str
		}
		rows = append(rows, row)
	}

	widths := columnWidths(rows, len(columns))

	if w.headerRow {
		if err := w.writeRow(dest, rows[0], widths); err != nil {
			return err
		}
		if err := w.writeRule(dest, widths); err != nil {
			return err
		}
		rows = rows[1:]
	}
	for _, row := range rows {
		if err := w.writeRow(dest, row, widths); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths returns the display width of the widest cell
// per column as counted by runewidth.
func columnWidths(rows [][]string, numCols int) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for col, cell := range row {
			if width := runewidth.StringWidth(cell); width > widths[col] {
				widths[col] = width
			}
		}
	}
	return widths
}

func (w *Writer[T]) writeRow(dest io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = padCell(cells[i], width)
	}
	line := strings.TrimRight(strings.Join(parts, w.columnSep), " ")
	_, err := fmt.Fprintln(dest, line)
	return err
}

func (w *Writer[T]) writeRule(dest io.Writer, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(dest, strings.Join(parts, w.columnSep))
	return err
}

func padCell(cell string, width int) string {
	pad := width - runewidth.StringWidth(cell)
	if pad <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", pad)
}
