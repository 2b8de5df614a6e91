package htmltable

import (
	"context"
	"io"

	tablefor "github.com/cmingxu/table-for"
)

// TableFor renders records as an HTML table to dest, with attrs
// on the outer <table> tag and the columns declared by define.
// It is shorthand for configuring a Writer:
//
//	err := htmltable.TableFor(ctx, &buf, people,
//	    tablefor.Attrs{{Key: "id", Value: "people_table"}},
//	    func(t *tablefor.Definition[Person]) {
//	        t.Column("name")
//	        t.Column("age")
//	    })
//
// Use a Writer directly to register helpers or customize templates.
func TableFor[T any](ctx context.Context, dest io.Writer, records []T, attrs tablefor.Attrs, define tablefor.DefineFunc[T]) error {
	return NewWriter[T]().WithTableAttrs(attrs...).Write(ctx, dest, records, define)
}
