package tablefor

import (
	"strings"
	"unicode"
)

// Humanize converts an accessor identifier into a display label.
// Underscores become spaces, PascalCase like names are split into
// words, the first word is capitalized and following words are
// lower-cased:
//
//	Humanize("age")        == "Age"
//	Humanize("first_name") == "First name"
//	Humanize("CreatedAt")  == "Created at"
func Humanize(name string) string {
	var words []string
	var word []rune
	lastWasUpper := true
	for _, r := range name {
		switch {
		case r == '_' || unicode.IsSpace(r):
			if len(word) > 0 {
				words = append(words, string(word))
				word = word[:0]
			}
			lastWasUpper = false
		case unicode.IsUpper(r) && !lastWasUpper:
			if len(word) > 0 {
				words = append(words, string(word))
				word = word[:0]
			}
			word = append(word, r)
			lastWasUpper = true
		default:
			word = append(word, r)
			lastWasUpper = unicode.IsUpper(r)
		}
	}
	if len(word) > 0 {
		words = append(words, string(word))
	}
	if len(words) == 0 {
		return ""
	}
	for i := range words {
		if i == 0 {
			r := []rune(words[0])
			r[0] = unicode.ToUpper(r[0])
			words[0] = string(r)
		} else {
			words[i] = strings.ToLower(words[i])
		}
	}
	return strings.Join(words, " ")
}

// pascalCase converts a snake_case accessor to its exported Go form:
// "first_name" becomes "FirstName", "size" becomes "Size".
// Already PascalCase names pass through unchanged.
func pascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upperNext := true
	for _, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
