package usecase

import (
	"fmt"

	"ngram/internal/adapter/analyzer"
	"ngram/internal/domain"
	"ngram/internal/port"
)

// Preprocessor turns paragraphs into token sequences: segment, then
// normalise and tokenise every sentence with one rule set.
type Preprocessor struct {
	segmenter *analyzer.Segmenter
	rules     port.LanguageRules
}

// NewPreprocessor creates a preprocessor for rules. Sentences are always
// segmented with the default abbreviation guard.
func NewPreprocessor(rules port.LanguageRules) *Preprocessor {
	return &Preprocessor{
		segmenter: analyzer.NewSegmenter(nil),
		rules:     rules,
	}
}

// NewPreprocessorFor creates a preprocessor with the default rules of lang.
func NewPreprocessorFor(lang domain.Language) (*Preprocessor, error) {
	rules, err := analyzer.RulesFor(lang)
	if err != nil {
		return nil, err
	}
	return NewPreprocessor(rules), nil
}

func (p *Preprocessor) Rules() port.LanguageRules {
	return p.rules
}

// Sentences segments every paragraph and concatenates the results.
func (p *Preprocessor) Sentences(paragraphs []string) ([]string, error) {
	var sentences []string
	for i, paragraph := range paragraphs {
		segs, err := p.segmenter.Segment(paragraph)
		if err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i+1, err)
		}
		sentences = append(sentences, segs...)
	}
	return sentences, nil
}

// Sequence normalises and tokenises a single sentence.
func (p *Preprocessor) Sequence(sentence string) domain.TokenSequence {
	return p.rules.Tokenise(p.rules.Normalise(sentence))
}

// Preprocess returns one token sequence per sentence of paragraphs.
// Sentences that produce no tokens are dropped.
func (p *Preprocessor) Preprocess(paragraphs []string) ([]domain.TokenSequence, error) {
	sentences, err := p.Sentences(paragraphs)
	if err != nil {
		return nil, err
	}
	seqs := make([]domain.TokenSequence, 0, len(sentences))
	for _, sentence := range sentences {
		if seq := p.Sequence(sentence); len(seq) > 0 {
			seqs = append(seqs, seq)
		}
	}
	return seqs, nil
}
