package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitApostrophes puts every apostrophe that is not the first character of s
// into its own whitespace-delimited slot.
func splitApostrophes(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	prev := rune(-1)
	for i, r := range s {
		if r != '\'' || i == 0 {
			b.WriteRune(r)
			prev = r
			continue
		}
		if !unicode.IsSpace(prev) {
			b.WriteByte(' ')
		}
		b.WriteString("' ")
		prev = r
	}
	return b.String()
}

// separatePunctuation inserts a space before every mark accepted by isMark
// that is followed by whitespace or the end of s, unless guard protects it.
// A run of terminal marks (". ! ?") is moved as one unit, so "..." and "?!"
// come out as single tokens.
func separatePunctuation(s string, isMark func(rune) bool, guard *AbbreviationGuard) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isMark(r) {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}

		end := i + size
		if isTerminal(s[i]) {
			for end < len(s) && isTerminal(s[end]) {
				end++
			}
		}
		if atSpaceOrEnd(s, end) && !guard.Guards(s, i) {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:end])
		i = end
	}
	return b.String()
}

// tokens splits s on whitespace runs; the result never holds empty strings.
func tokens(s string) []string {
	return strings.Fields(s)
}
