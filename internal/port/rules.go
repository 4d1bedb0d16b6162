package port

import "ngram/internal/domain"

// LanguageRules normalises and tokenises sentences of one language.
type LanguageRules interface {
	Language() domain.Language

	// Normalise rewrites quotes and applies language-specific spelling rules.
	Normalise(sentence string) string

	// Tokenise splits a normalised sentence into non-empty tokens.
	Tokenise(sentence string) []string
}
