package glyph

import "strings"

// Validate reports whether every rune of text, once upper-cased, is either a
// space or has a glyph. Empty text is not valid.
func Validate(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range strings.ToUpper(text) {
		if r != ' ' && !Supported(r) {
			return false
		}
	}
	return true
}

// Prepare upper-cases text and replaces every rune without a glyph by a space.
// Whitespace is kept as is so word positions survive.
func Prepare(text string) string {
	if text == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == ' ' || Supported(r) {
			return r
		}
		return ' '
	}, strings.ToUpper(text))
}
