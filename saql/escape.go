package saql

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// identReplacer escapes the characters that terminate or confuse a
// single-quoted SAQL identifier.
var identReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
)

// stringReplacer escapes the characters that terminate or confuse a
// double-quoted SAQL string literal.
var stringReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
)

// EscapeIdentifier returns the SAQL identifier form of a raw name: NFC
// normalized and wrapped in single quotes with reserved characters escaped.
// Quoting unconditionally also neutralizes reserved keywords, so callers
// never need a keyword table.
func EscapeIdentifier(name string) string {
	return "'" + identReplacer.Replace(norm.NFC.String(name)) + "'"
}

// QuoteString returns the SAQL string-literal form of a raw string: NFC
// normalized and wrapped in double quotes with reserved characters escaped.
func QuoteString(s string) string {
	return `"` + stringReplacer.Replace(norm.NFC.String(s)) + `"`
}
