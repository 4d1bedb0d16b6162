package analyzer

import (
	"regexp"

	"ngram/internal/domain"
)

var (
	// American -or and -iz- spellings, rewritten unconditionally.
	americanOr = regexp.MustCompile(`([a-z]{3,})or`)
	americanIz = regexp.MustCompile(`([a-z]{2,})iz([eai])`)
)

// EnglishRules normalises to British spelling and tokenises English text.
type EnglishRules struct {
	guard *AbbreviationGuard
}

// NewEnglishRules creates English rules with the given abbreviation guard,
// or the default guard when nil.
func NewEnglishRules(guard *AbbreviationGuard) *EnglishRules {
	if guard == nil {
		guard = NewAbbreviationGuard(DefaultAbbreviations())
	}
	return &EnglishRules{guard: guard}
}

func (r *EnglishRules) Language() domain.Language {
	return domain.English
}

// Normalise rewrites quotes, then "color" -> "colour" and
// "organize"/"organization"/"organizing" -> "organise"/"organisation"/"organising".
// The rewrites are substring heuristics and also hit words such as "for" +
// suffix ("before" -> "befoure"); that is accepted.
func (r *EnglishRules) Normalise(sentence string) string {
	sentence = normaliseQuotes(sentence)
	sentence = americanOr.ReplaceAllString(sentence, "${1}our")
	return americanIz.ReplaceAllString(sentence, "${1}is${2}")
}

// Tokenise splits apostrophes into their own tokens, separates
// sentence-final punctuation from words, and splits on whitespace.
func (r *EnglishRules) Tokenise(sentence string) []string {
	s := splitApostrophes(sentence)
	s = separatePunctuation(s, isEnglishMark, r.guard)
	return tokens(s)
}

func isEnglishMark(r rune) bool {
	switch r {
	case '.', ',', ';', ':', ')', '(', '"', '?', '!':
		return true
	}
	return false
}
