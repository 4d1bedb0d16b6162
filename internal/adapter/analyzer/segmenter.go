package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"ngram/internal/domain"
)

// Segmenter splits a paragraph into sentences.
type Segmenter struct {
	guard *AbbreviationGuard
}

// NewSegmenter creates a Segmenter using the given abbreviation guard.
// A nil guard falls back to DefaultAbbreviations.
func NewSegmenter(guard *AbbreviationGuard) *Segmenter {
	if guard == nil {
		guard = NewAbbreviationGuard(DefaultAbbreviations())
	}
	return &Segmenter{guard: guard}
}

// Segment splits paragraph on runs of terminal punctuation (. ! ?), together
// with any closing quotes or parentheses, that are followed by whitespace or
// the end of input and not guarded by an abbreviation. Pieces are trimmed and
// empty pieces dropped; a blank paragraph yields no sentences.
func (s *Segmenter) Segment(paragraph string) ([]string, error) {
	if strings.ContainsAny(paragraph, "\n\r") {
		return nil, fmt.Errorf("%w: paragraph contains a line break", domain.ErrMalformedInput)
	}

	var sentences []string
	start := 0
	i := 0
	for i < len(paragraph) {
		if !isTerminal(paragraph[i]) {
			i++
			continue
		}

		// The whole run (e.g. "?!" or "...") is a single candidate boundary.
		runEnd := i
		for runEnd < len(paragraph) && isTerminal(paragraph[runEnd]) {
			runEnd++
		}
		end := runEnd
		for end < len(paragraph) {
			r, size := utf8.DecodeRuneInString(paragraph[end:])
			if !isClosing(r) {
				break
			}
			end += size
		}

		if atSpaceOrEnd(paragraph, end) && !s.guard.Guards(paragraph, i) {
			sentences = appendTrimmed(sentences, paragraph[start:end])
			start = end
			i = end
			continue
		}
		i = runEnd
	}

	return appendTrimmed(sentences, paragraph[start:]), nil
}

// Segment splits paragraph with the default abbreviation guard.
func Segment(paragraph string) ([]string, error) {
	return NewSegmenter(nil).Segment(paragraph)
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isClosing(r rune) bool {
	switch r {
	case '\'', '’', '"', '”', '»', ')':
		return true
	}
	return false
}

// atSpaceOrEnd reports whether s has whitespace at byte offset pos or ends there.
func atSpaceOrEnd(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsSpace(r)
}

func appendTrimmed(sentences []string, piece string) []string {
	if piece = strings.TrimSpace(piece); piece != "" {
		sentences = append(sentences, piece)
	}
	return sentences
}
