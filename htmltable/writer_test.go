package htmltable

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tablefor "github.com/cmingxu/table-for"
)

type person struct {
	First string
	Last  string
	Age   int
	Size  float64
}

func (p person) FullName() string {
	return p.First + " " + p.Last
}

var personHelpers = tablefor.Helpers{
	"round_to": func(value float64, places int) float64 {
		shift := math.Pow(10, float64(places))
		return math.Round(value*shift) / shift
	},
}

var people = []person{
	{First: "Ada", Last: "Lovelace", Age: 36, Size: 3.14159},
	{First: "Grace", Last: "Hopper", Age: 85, Size: 2.71828},
}

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter[person]().
		WithTableAttrs(tablefor.Attr{Key: "id", Value: "people_table"}).
		WithHelpers(personHelpers).
		Write(context.Background(), &buf, people, func(t *tablefor.Definition[person]) {
			t.Column("age")
			t.NamedColumn("Size", "size",
				tablefor.Helper("round_to", 2),
				tablefor.HTML(tablefor.Attr{Key: "class", Value: "numeric"}))
			t.ColumnFunc("Full Name", func(p person) any { return p.FullName() })
		})
	require.NoError(t, err)

	want := "" +
		`<table id="people_table">` + "\n" +
		"  <thead>\n" +
		`    <tr><th>Age</th><th class="numeric">Size</th><th>Full Name</th></tr>` + "\n" +
		"  </thead>\n" +
		"  <tbody>\n" +
		`    <tr><td>36</td><td class="numeric">3.14</td><td>Ada Lovelace</td></tr>` + "\n" +
		`    <tr><td>85</td><td class="numeric">2.72</td><td>Grace Hopper</td></tr>` + "\n" +
		"  </tbody>\n" +
		"</table>\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_NilDefineFunc(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter[person]().Write(context.Background(), &buf, people, nil)
	require.ErrorIs(t, err, tablefor.ErrNilDefineFunc)
	assert.Zero(t, buf.Len(), "no markup before the usage error")
}

func TestWriter_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	err := TableFor(context.Background(), &buf, []person{}, nil, func(t *tablefor.Definition[person]) {
		t.Column("age")
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "<th>"), "header cell still rendered")
	assert.Contains(t, out, "<tbody>\n  </tbody>", "empty tbody is rendered, not omitted")
	assert.NotContains(t, out, "<td>")
}

func TestWriter_ZeroColumns(t *testing.T) {
	var buf bytes.Buffer
	err := TableFor(context.Background(), &buf, people, nil, func(t *tablefor.Definition[person]) {})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "<tr></tr>"), "one empty header row and one empty row per record")
	assert.NotContains(t, out, "<th>")
	assert.NotContains(t, out, "<td>")
}

func TestWriter_RowAndCellCounts(t *testing.T) {
	var buf bytes.Buffer
	err := TableFor(context.Background(), &buf, people, nil, func(t *tablefor.Definition[person]) {
		t.Column("first")
		t.Column("last")
		t.Column("age")
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "<th>"))
	assert.Equal(t, 1+len(people), strings.Count(out, "<tr>"))
	assert.Equal(t, 3*len(people), strings.Count(out, "<td>"))
}

func TestWriter_HelperNotFound(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter[person]().
		WithHelpers(personHelpers).
		Write(context.Background(), &buf, people, func(t *tablefor.Definition[person]) {
			t.Column("size", tablefor.Helper("no_such_helper"))
		})
	require.ErrorIs(t, err, tablefor.ErrHelperNotFound)
	assert.Zero(t, buf.Len(), "declaration errors surface before any markup")
}

func TestWriter_MissingAccessor(t *testing.T) {
	var buf bytes.Buffer
	err := TableFor(context.Background(), &buf, people, nil, func(t *tablefor.Definition[person]) {
		t.Column("no_such_accessor")
	})
	require.ErrorIs(t, err, tablefor.ErrNoAccessor)
	assert.Contains(t, buf.String(), "<thead>", "render aborts mid-stream, earlier output stays")
}

func TestWriter_Escaping(t *testing.T) {
	type row struct {
		Text string
		Link template.HTML
	}
	rows := []row{{Text: `<b>bold</b> & "quoted"`, Link: template.HTML(`<a href="/">home</a>`)}}

	var buf bytes.Buffer
	err := TableFor(context.Background(), &buf, rows, nil, func(t *tablefor.Definition[row]) {
		t.NamedColumn("A <Header>", "text")
		t.Column("link")
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<th>A &lt;Header&gt;</th>")
	assert.Contains(t, out, "<td>&lt;b&gt;bold&lt;/b&gt; &amp; &#34;quoted&#34;</td>")
	assert.Contains(t, out, `<td><a href="/">home</a></td>`, "template.HTML passes through unescaped")
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := TableFor(ctx, &buf, people, nil, func(t *tablefor.Definition[person]) {
		t.Column("age")
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestWriter_WithMethodsDoNotMutate(t *testing.T) {
	base := NewWriter[person]()
	mod := base.WithTableAttrs(tablefor.Attr{Key: "id", Value: "x"})
	assert.Empty(t, base.TableAttrs())
	assert.Equal(t, tablefor.Attrs{{Key: "id", Value: "x"}}, mod.TableAttrs())
}

func ExampleTableFor() {
	type book struct {
		Title string
		Pages int
	}
	books := []book{
		{Title: "The Go Programming Language", Pages: 380},
		{Title: "Mythical Man-Month", Pages: 322},
	}

	err := TableFor(context.Background(), os.Stdout, books,
		tablefor.Attrs{{Key: "id", Value: "books"}},
		func(t *tablefor.Definition[book]) {
			t.Column("title")
			t.Column("pages", tablefor.HTML(tablefor.Attr{Key: "class", Value: "numeric"}))
		})
	if err != nil {
		fmt.Println(err)
	}

	// Output:
	// <table id="books">
	//   <thead>
	//     <tr><th>Title</th><th class="numeric">Pages</th></tr>
	//   </thead>
	//   <tbody>
	//     <tr><td>The Go Programming Language</td><td class="numeric">380</td></tr>
	//     <tr><td>Mythical Man-Month</td><td class="numeric">322</td></tr>
	//   </tbody>
	// </table>
}
