package generator

import (
	"strings"
	"text/template"
	"unicode"
)

// includeGuard turns a file name like "my-lib.h" into "MY_LIB_H".
func includeGuard(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, name)
}

// FuncMap returns the helpers available to every template, bundled or
// user supplied.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"guard": includeGuard,
	}
}
