// Package tablefor provides a declarative way to render collections
// of records as tables. A DefineFunc declares an ordered list of
// columns against a Definition; the writers in the htmltable and
// texttable packages render the declared columns for every record.
package tablefor

import (
	"errors"
	"fmt"
)

// DefineFunc populates a Definition with column declarations.
type DefineFunc[T any] func(*Definition[T])

// Definition collects an ordered sequence of column declarations.
// A Definition is created per render call, populated synchronously
// by the caller's DefineFunc, and discarded after rendering.
// Columns are rendered in declaration order.
type Definition[T any] struct {
	helpers Helpers
	columns []Column[T]
	err     error
}

// NewDefinition returns an empty Definition resolving
// Helper column options against helpers.
func NewDefinition[T any](helpers Helpers) *Definition[T] {
	return &Definition[T]{helpers: helpers}
}

// ColumnOption configures a single column declaration.
type ColumnOption func(*columnConfig)

type columnConfig struct {
	attrs      Attrs
	helper     string
	helperArgs []any
	hasHelper  bool
}

// HTML declares attributes rendered on the column's
// header and data cells.
func HTML(attrs ...Attr) ColumnOption {
	return func(c *columnConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// Helper declares that the column's accessor value is passed
// through the named helper, followed by extraArgs in order.
// The helper is looked up when the column is declared,
// an unknown name fails the whole table definition.
func Helper(name string, extraArgs ...any) ColumnOption {
	return func(c *columnConfig) {
		c.helper = name
		c.helperArgs = extraArgs
		c.hasHelper = true
	}
}

func newColumnConfig(opts []ColumnOption) columnConfig {
	var cfg columnConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Column declares a column from a single accessor identifier.
// The display name is the humanized accessor, so Column("age")
// declares the accessor "age" with the header "Age".
func (d *Definition[T]) Column(accessor string, opts ...ColumnOption) *Definition[T] {
	return d.NamedColumn(Humanize(accessor), accessor, opts...)
}

// NamedColumn declares a column with an explicit display name.
// An empty accessor falls back to the name itself, an empty name
// falls back to the humanized accessor.
func (d *Definition[T]) NamedColumn(name, accessor string, opts ...ColumnOption) *Definition[T] {
	if accessor == "" {
		accessor = name
	}
	if name == "" {
		name = Humanize(accessor)
	}
	if accessor == "" {
		return d.fail(errors.New("column declared without name or accessor"))
	}
	cfg := newColumnConfig(opts)
	if cfg.hasHelper {
		helper, err := d.helpers.resolve(cfg.helper, cfg.helperArgs)
		if err != nil {
			return d.fail(fmt.Errorf("column %q: %w", name, err))
		}
		d.columns = append(d.columns, &helperColumn[T]{
			name:     name,
			accessor: accessor,
			helper:   helper,
			attrs:    cfg.attrs,
		})
		return d
	}
	d.columns = append(d.columns, &accessorColumn[T]{
		name:     name,
		accessor: accessor,
		attrs:    cfg.attrs,
	})
	return d
}

// ColumnFunc declares a column whose cell values are computed
// by fn directly from the record. A Helper option is ignored,
// the func form takes precedence.
func (d *Definition[T]) ColumnFunc(name string, fn CellFunc[T], opts ...ColumnOption) *Definition[T] {
	if fn == nil {
		return d.fail(fmt.Errorf("column %q: nil cell function", name))
	}
	cfg := newColumnConfig(opts)
	d.columns = append(d.columns, &funcColumn[T]{
		name:  name,
		fn:    fn,
		attrs: cfg.attrs,
	})
	return d
}

// Columns returns the declared columns in declaration order.
func (d *Definition[T]) Columns() []Column[T] {
	return d.columns
}

// Err returns the first error recorded while declaring columns.
// Writers check it after running the DefineFunc and before
// emitting any output.
func (d *Definition[T]) Err() error {
	return d.err
}

func (d *Definition[T]) fail(err error) *Definition[T] {
	if d.err == nil {
		d.err = err
	}
	return d
}
