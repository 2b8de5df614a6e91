package tablefor

import (
	"html/template"
	"strings"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered list of HTML attributes.
// The order of the list is the order attributes
// appear in the rendered markup.
type Attrs []Attr

// Set returns the attributes with key set to value,
// replacing the value of an existing key in place
// or appending a new attribute.
func (a Attrs) Set(key, value string) Attrs {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Key: key, Value: value})
}

// Get returns the value for key and whether the key is present.
func (a Attrs) Get(key string) (value string, ok bool) {
	for i := range a {
		if a[i].Key == key {
			return a[i].Value, true
		}
	}
	return "", false
}

// HTML renders the attributes as space separated key="value" pairs
// with a leading space, usable directly after a tag name.
// Values are HTML attribute escaped, keys are written verbatim
// because they come from the table declaration, not from records.
// Empty Attrs render as an empty string.
func (a Attrs) HTML() template.HTMLAttr {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(attr.Value))
		b.WriteByte('"')
	}
	return template.HTMLAttr(b.String()) //#nosec G203
}
