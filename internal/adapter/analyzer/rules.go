package analyzer

import (
	"fmt"

	"ngram/internal/domain"
	"ngram/internal/port"
)

// RulesFor returns the rule set for lang with default abbreviations and
// expansions. Unknown languages yield domain.ErrUnsupportedLanguage.
func RulesFor(lang domain.Language) (port.LanguageRules, error) {
	switch lang {
	case domain.English:
		return NewEnglishRules(nil), nil
	case domain.French:
		return NewFrenchRules(nil, DefaultFrenchExpansions()), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}
}

// Normalise normalises sentence with the rules of lang.
func Normalise(sentence string, lang domain.Language) (string, error) {
	rules, err := RulesFor(lang)
	if err != nil {
		return "", err
	}
	return rules.Normalise(sentence), nil
}

// Tokenise tokenises an already normalised sentence with the rules of lang.
func Tokenise(sentence string, lang domain.Language) ([]string, error) {
	rules, err := RulesFor(lang)
	if err != nil {
		return nil, err
	}
	return rules.Tokenise(sentence), nil
}
