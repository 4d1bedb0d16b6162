package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAbbreviations lists the words after which terminal punctuation does
// not end a sentence or split off as a token. Matching is case-sensitive.
func DefaultAbbreviations() []string {
	return []string{"M", "Prof", "Sgt", "Lt", "Ltd", "co", "etc"}
}

// latinForms are checked as suffixes because they contain an inner dot.
var latinForms = []string{"i.e", "I.e", "e.g", "E.g"}

// AbbreviationGuard decides whether a punctuation mark directly follows a
// protected abbreviation. It is immutable after construction and safe for
// concurrent use.
type AbbreviationGuard struct {
	words map[string]struct{}
}

// NewAbbreviationGuard builds a guard over the given words.
func NewAbbreviationGuard(words []string) *AbbreviationGuard {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &AbbreviationGuard{words: set}
}

// Guards reports whether the punctuation mark at byte offset pos of s is
// immediately preceded by an abbreviation, a single uppercase letter, or one
// of i.e / e.g.
func (g *AbbreviationGuard) Guards(s string, pos int) bool {
	if pos <= 0 || pos > len(s) {
		return false
	}
	prefix := s[:pos]

	if word := trailingLetters(prefix); word != "" {
		if _, ok := g.words[word]; ok {
			return true
		}
		r, size := utf8.DecodeRuneInString(word)
		if size == len(word) && unicode.IsUpper(r) {
			return true
		}
	}

	for _, form := range latinForms {
		if !strings.HasSuffix(prefix, form) {
			continue
		}
		rest := prefix[:len(prefix)-len(form)]
		if rest == "" {
			return true
		}
		if r, _ := utf8.DecodeLastRuneInString(rest); !unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Words returns a copy of the guarded word list.
func (g *AbbreviationGuard) Words() []string {
	out := make([]string, 0, len(g.words))
	for w := range g.words {
		out = append(out, w)
	}
	return out
}

// trailingLetters returns the maximal run of letters at the end of s.
func trailingLetters(s string) string {
	i := len(s)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(r) {
			break
		}
		i -= size
	}
	return s[i:]
}
