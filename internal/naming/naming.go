// Package naming converts identifiers between the casing conventions used
// by the schema and code generators.
package naming

import (
	"strings"
	"unicode"
)

// Snake converts an identifier to snake_case ("isActive" -> "is_active").
//
// Runs of consecutive uppercase letters are treated as one word boundary,
// so "userID" becomes "user_id" rather than "user_i_d".
func Snake(s string) string {
	var b strings.Builder
	prevUpper := false
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && !prevUpper {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevUpper = true
		} else {
			b.WriteRune(r)
			prevUpper = false
		}
	}
	return b.String()
}

// Pascal converts an identifier to PascalCase ("user_name" -> "UserName").
func Pascal(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

// Camel converts an identifier to camelCase ("user_name" -> "userName").
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return ""
	}
	r := []rune(p)
	return string(unicode.ToLower(r[0])) + string(r[1:])
}
