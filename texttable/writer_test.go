package texttable

import (
	"bytes"
	"context"
	"math"
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
		WithHelpers(personHelpers).
		Write(context.Background(), &buf, people, func(t *tablefor.Definition[person]) {
			t.Column("age")
			t.NamedColumn("Size", "size", tablefor.Helper("round_to", 2))
			t.ColumnFunc("Full Name", func(p person) any { return p.First + " " + p.Last })
		})
	require.NoError(t, err)

	want := "" +
		"Age  Size  Full Name\n" +
		"---  ----  ------------\n" +
		"36   3.14  Ada Lovelace\n" +
		"85   2.72  Grace Hopper\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_NoHeaderRow(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter[person]().
		WithHeaderRow(false).
		Write(context.Background(), &buf, people, func(t *tablefor.Definition[person]) {
			t.Column("first")
		})
	require.NoError(t, err)
	assert.Equal(t, "Ada\nGrace\n", buf.String())
}

func TestWriter_WideRunes(t *testing.T) {
	type row struct {
		Name string
		Note string
	}
	rows := []row{
		{Name: "日本語", Note: "wide"},
		{Name: "go", Note: "narrow"},
	}

	var buf bytes.Buffer
	err := NewWriter[row]().Write(context.Background(), &buf, rows, func(t *tablefor.Definition[row]) {
		t.Column("name")
		t.Column("note")
	})
	require.NoError(t, err)

	// 日本語 occupies six display cells, so the first column is six wide.
	want := "" +
		"Name    Note\n" +
		"------  ------\n" +
		"日本語  wide\n" +
		"go      narrow\n"
	assert.Equal(t, want, buf.String())
}

func TestWriter_NilDefineFunc(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter[person]().Write(context.Background(), &buf, people, nil)
	require.ErrorIs(t, err, tablefor.ErrNilDefineFunc)
	assert.Zero(t, buf.Len())
}

func TestWriter_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter[person]().Write(context.Background(), &buf, nil, func(t *tablefor.Definition[person]) {
		t.Column("age")
	})
	require.NoError(t, err)
	assert.Equal(t, "Age\n---\n", buf.String())
}
