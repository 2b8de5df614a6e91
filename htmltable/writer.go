// Package htmltable renders declaratively defined tables as HTML.
//
// The package is built around the Writer type which renders the
// columns declared by a tablefor.DefineFunc as one header row and
// one body row per record:
//
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//	people := []Person{{"Alice", 30}, {"Bob", 25}}
//
//	err := htmltable.NewWriter[Person]().
//	    WithTableAttrs(tablefor.Attr{Key: "id", Value: "people"}).
//	    Write(ctx, os.Stdout, people, func(t *tablefor.Definition[Person]) {
//	        t.Column("name")
//	        t.Column("age")
//	    })
//
// Header names and cell values are HTML-escaped unless a cell value
// is a template.HTML, which passes through unescaped.
package htmltable

import (
	"context"
	"html/template"
	"io"

	tablefor "github.com/cmingxu/table-for"
)

// Writer renders tables declared for record type T as HTML.
//
// Writer is immutable after creation, all With* methods return
// a new Writer with the modified configuration.
type Writer[T any] struct {
	tableAttrs     tablefor.Attrs
	helpers        tablefor.Helpers
	headerTemplate *template.Template
	rowTemplate    *template.Template
	footerTemplate *template.Template
}

// NewWriter creates a Writer for record type T
// with the default templates, no table attributes,
// and no helpers.
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		headerTemplate: HeaderTemplate,
		rowTemplate:    RowTemplate,
		footerTemplate: FooterTemplate,
	}
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// WithTableAttrs returns a new writer with the passed attributes
// rendered on the outer <table> tag.
func (w *Writer[T]) WithTableAttrs(attrs ...tablefor.Attr) *Writer[T] {
	mod := w.clone()
	mod.tableAttrs = attrs
	return mod
}

// WithHelpers returns a new writer whose table definitions resolve
// Helper column options against helpers.
func (w *Writer[T]) WithHelpers(helpers tablefor.Helpers) *Writer[T] {
	mod := w.clone()
	mod.helpers = helpers
	return mod
}

// WithTemplate returns a new writer with custom templates.
// The header template receives a TemplateContext and renders
// everything before the first body row, the row template receives
// a RowTemplateContext per record, and the footer template closes
// the table. See templates.go for the defaults.
func (w *Writer[T]) WithTemplate(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer[T] {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// TableAttrs returns the attributes rendered on the <table> tag.
func (w *Writer[T]) TableAttrs() tablefor.Attrs {
	return w.tableAttrs
}

// Write renders records as an HTML table to dest.
//
// The define func is mandatory and is run to completion against a
// fresh Definition before any output is produced, so declaration
// errors like an unknown helper never leave partial markup behind.
// Format errors abort the render mid-stream, whatever the templates
// already wrote to dest stays written.
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

	colAttrs := make([]template.HTMLAttr, len(columns))
	for i, col := range columns {
		colAttrs[i] = col.Attrs().HTML()
	}

	templData := RowTemplateContext{
		TemplateContext: TemplateContext{
			TableAttrs:  w.tableAttrs.HTML(),
			HeaderCells: make([]CellContext, len(columns)),
		},
		Cells: make([]CellContext, len(columns)),
	}
	for i, col := range columns {
		templData.HeaderCells[i] = CellContext{
			Attrs:   colAttrs[i],
			Content: template.HTML(template.HTMLEscapeString(col.Name())), //#nosec G203
		}
	}

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	for _, record := range records {
		if err = ctx.Err(); err != nil {
			return err
		}
		for i, col := range columns {
			str, raw, err := col.Format(ctx, record)
			if err != nil {
				return err
			}
			if !raw {
				str = template.HTMLEscapeString(str)
			}
			templData.Cells[i] = CellContext{
				Attrs:   colAttrs[i],
				Content: template.HTML(str), //#nosec G203
			}
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}
