package htmltable

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{.TableAttrs}}>\n" +
			"  <thead>\n" +
			"    <tr>{{range $cell := .HeaderCells}}<th{{$cell.Attrs}}>{{$cell.Content}}</th>{{end}}</tr>\n" +
			"  </thead>\n" +
			"  <tbody>\n",
	))

	RowTemplate = template.Must(template.New("row").Parse(
		"    <tr>{{range $cell := .Cells}}<td{{$cell.Attrs}}>{{$cell.Content}}</td>{{end}}</tr>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"  </tbody>\n</table>\n",
	))
)

// CellContext is one rendered cell passed to the templates.
// Attrs and Content are already escaped.
type CellContext struct {
	Attrs   template.HTMLAttr
	Content template.HTML
}

type TemplateContext struct {
	TableAttrs  template.HTMLAttr
	HeaderCells []CellContext
}

type RowTemplateContext struct {
	TemplateContext

	RowIndex int
	Cells    []CellContext
}
