package lm

import (
	"sort"

	"ngram/internal/adapter/analyzer"
	"ngram/internal/domain"
	"ngram/internal/port"
)

// Scorer sums the log probabilities of a sentence's units under a table.
type Scorer struct {
	rules port.LanguageRules
	est   Estimator
}

// NewScorer creates a scorer that prepares sentences with rules and takes
// units with est.
func NewScorer(rules port.LanguageRules, est Estimator) *Scorer {
	return &Scorer{rules: rules, est: est}
}

// Units returns the units looked up for sentence.
func (s *Scorer) Units(sentence string) []string {
	framed := s.est.FrameSentence(sentence)
	return s.est.Units(s.rules.Tokenise(s.rules.Normalise(framed)))
}

// Score returns the sum of table entries over the units of sentence.
// Units missing from the table add nothing.
func (s *Scorer) Score(sentence string, table domain.ProbabilityTable) float64 {
	score := 0.0
	for _, unit := range s.Units(sentence) {
		if p, ok := table[unit]; ok {
			score += p
		}
	}
	return score
}

// Rank scores every sentence and orders them from most to least likely.
// Ties keep their input order.
func (s *Scorer) Rank(sentences []string, table domain.ProbabilityTable) []domain.ScoredSentence {
	ranked := make([]domain.ScoredSentence, len(sentences))
	for i, sentence := range sentences {
		units := s.Units(sentence)
		score := 0.0
		for _, unit := range units {
			score += table[unit]
		}
		ranked[i] = domain.ScoredSentence{
			Sentence: sentence,
			Score:    score,
			Tokens:   len(units),
		}
	}
	SortByScore(ranked)
	return ranked
}

// SortByScore orders scored sentences by descending score, keeping the
// input order of ties.
func SortByScore(scored []domain.ScoredSentence) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}

// ScoreUnigram scores sentence under a unigram table using English rules.
func ScoreUnigram(sentence string, table domain.ProbabilityTable) float64 {
	return NewScorer(analyzer.NewEnglishRules(nil), UnigramEstimator{}).Score(sentence, table)
}

// ScoreBigram scores sentence under a bigram table using English rules.
// The sentence is wrapped with the sentinels before tokenisation.
func ScoreBigram(sentence string, table domain.ProbabilityTable) float64 {
	return NewScorer(analyzer.NewEnglishRules(nil), BigramEstimator{}).Score(sentence, table)
}
