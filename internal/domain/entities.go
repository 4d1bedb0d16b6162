package domain

import (
	"fmt"
	"strings"
	"time"
)

// Language selects the normalisation and tokenisation rule set.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// ParseLanguage maps a language tag to a supported Language.
func ParseLanguage(tag string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(tag))) {
	case English:
		return English, nil
	case French:
		return French, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
}

// Order is the n-gram order of a language model.
type Order string

const (
	Unigram Order = "unigram"
	Bigram  Order = "bigram"
)

// ParseOrder maps a model order name to an Order.
func ParseOrder(name string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(name))) {
	case Unigram:
		return Unigram, nil
	case Bigram:
		return Bigram, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrder, name)
	}
}

// Sentinel tokens framing a sentence for bigram counting.
const (
	BeginToken = "_BEGIN_"
	EndToken   = "_END_"
)

// TokenSequence is the ordered token list of one sentence.
type TokenSequence []string

// CountTable maps a unit key (token or "left right" pair) to its count.
type CountTable map[string]int

// Total returns the sum of all counts.
func (c CountTable) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// ProbabilityTable maps a unit key to its natural-log probability.
type ProbabilityTable map[string]float64

// ModelInfo describes a trained model without its table.
type ModelInfo struct {
	Name       string    `json:"name"`
	Order      Order     `json:"order"`
	Language   Language  `json:"language"`
	Source     string    `json:"source"`
	Sentences  int       `json:"sentences"`
	Total      int       `json:"total"`
	Entries    int       `json:"entries"`
	ConfigHash string    `json:"config_hash,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Lowercase records that the corpus was lowercased before counting.
	Lowercase bool `json:"lowercase"`
}

// Model is a trained probability table with its metadata.
type Model struct {
	ModelInfo
	Table ProbabilityTable
}

type ScoredSentence struct {
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"`
	Tokens   int     `json:"tokens"`
}
