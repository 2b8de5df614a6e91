// Package yamltable loads table definitions from YAML documents,
// so column declarations can live in data files instead of code:
//
//	html:
//	  id: people_table
//	columns:
//	  - name: Size
//	    accessor: size
//	    helper: round_to
//	    helper_args: [2]
//	    html:
//	      class: numeric
//	  - accessor: age
//
// Define converts a parsed Def into a tablefor.DefineFunc that
// declares the same columns a hand-written define func would.
package yamltable

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	tablefor "github.com/cmingxu/table-for"
)

// Def is a table definition declared in a YAML document.
type Def struct {
	HTML    AttrsNode   `yaml:"html"`
	Columns []ColumnDef `yaml:"columns"`
}

// ColumnDef declares a single column.
// Name and Accessor default to each other like in
// tablefor.Definition.NamedColumn, so an entry with only
// an accessor gets a humanized display name.
type ColumnDef struct {
	Name       string    `yaml:"name"`
	Accessor   string    `yaml:"accessor"`
	Helper     string    `yaml:"helper"`
	HelperArgs []any     `yaml:"helper_args"`
	HTML       AttrsNode `yaml:"html"`
}

// AttrsNode decodes a YAML mapping into ordered attributes.
// Decoding into a Go map would lose the document's attribute order,
// which is contractual for the rendered markup.
type AttrsNode struct {
	Attrs tablefor.Attrs
}

func (n *AttrsNode) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: html attributes must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		n.Attrs = n.Attrs.Set(node.Content[i].Value, node.Content[i+1].Value)
	}
	return nil
}

// Parse parses a YAML table definition.
func Parse(data []byte) (*Def, error) {
	def := new(Def)
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, err
	}
	return def, nil
}

// Load reads and parses a YAML table definition from r.
func Load(r io.Reader) (*Def, error) {
	def := new(Def)
	if err := yaml.NewDecoder(r).Decode(def); err != nil {
		return nil, err
	}
	return def, nil
}

// TableAttrs returns the table level HTML attributes.
func (d *Def) TableAttrs() tablefor.Attrs {
	return d.HTML.Attrs
}

// Define converts the parsed definition into a DefineFunc
// for record type T.
func Define[T any](d *Def) tablefor.DefineFunc[T] {
	return func(t *tablefor.Definition[T]) {
		for _, col := range d.Columns {
			var opts []tablefor.ColumnOption
			if len(col.HTML.Attrs) > 0 {
				opts = append(opts, tablefor.HTML(col.HTML.Attrs...))
			}
			if col.Helper != "" {
				opts = append(opts, tablefor.Helper(col.Helper, col.HelperArgs...))
			}
			switch {
			case col.Accessor != "":
				t.NamedColumn(col.Name, col.Accessor, opts...)
			default:
				t.Column(col.Name, opts...)
			}
		}
	}
}
