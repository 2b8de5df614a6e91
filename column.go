package tablefor

import (
	"context"
	"fmt"
	"html/template"
	"reflect"
)

// CellFunc computes a cell value directly from a record.
// Returning a template.HTML value marks the cell as pre-escaped.
type CellFunc[T any] func(record T) any

// Column is a named, ordered specification of how to derive
// one cell's value from a record. There are three variants:
// plain accessor columns, helper columns, and cell func columns,
// declared through the corresponding Definition methods.
type Column[T any] interface {
	// Name returns the display name rendered in the header cell.
	Name() string

	// Attrs returns the HTML attributes for the column's
	// header and data cells.
	Attrs() Attrs

	// Format returns the cell value for record as a string.
	// A raw result is already safe for the output format
	// and must not be escaped again.
	Format(ctx context.Context, record T) (str string, raw bool, err error)
}

type accessorColumn[T any] struct {
	name     string
	accessor string
	attrs    Attrs
}

func (c *accessorColumn[T]) Name() string { return c.name }
func (c *accessorColumn[T]) Attrs() Attrs { return c.attrs }

func (c *accessorColumn[T]) Format(ctx context.Context, record T) (string, bool, error) {
	value, err := accessorValue(reflect.ValueOf(record), c.accessor)
	if err != nil {
		return "", false, err
	}
	str, raw := valueText(value)
	return str, raw, nil
}

type helperColumn[T any] struct {
	name     string
	accessor string
	helper   *resolvedHelper
	attrs    Attrs
}

func (c *helperColumn[T]) Name() string { return c.name }
func (c *helperColumn[T]) Attrs() Attrs { return c.attrs }

func (c *helperColumn[T]) Format(ctx context.Context, record T) (string, bool, error) {
	value, err := accessorValue(reflect.ValueOf(record), c.accessor)
	if err != nil {
		return "", false, err
	}
	result, err := c.helper.call(value)
	if err != nil {
		return "", false, err
	}
	str, raw := cellText(result)
	return str, raw, nil
}

type funcColumn[T any] struct {
	name  string
	fn    CellFunc[T]
	attrs Attrs
}

func (c *funcColumn[T]) Name() string { return c.name }
func (c *funcColumn[T]) Attrs() Attrs { return c.attrs }

func (c *funcColumn[T]) Format(ctx context.Context, record T) (string, bool, error) {
	str, raw := cellText(c.fn(record))
	return str, raw, nil
}

var htmlType = reflect.TypeOf(template.HTML(""))

// cellText formats a cell value returned by a helper or CellFunc.
func cellText(value any) (str string, raw bool) {
	if value == nil {
		return "", false
	}
	if html, ok := value.(template.HTML); ok {
		return string(html), true
	}
	return valueText(reflect.ValueOf(value))
}

// valueText formats a reflected cell value.
// Nil and nil-like values format as the empty string,
// template.HTML values are returned as raw.
func valueText(v reflect.Value) (str string, raw bool) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if !v.IsValid() || valueIsNil(v) {
		return "", false
	}
	if v.Type() == htmlType {
		return v.String(), true
	}
	return fmt.Sprint(v.Interface()), false
}

func valueIsNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
