// Package lm trains unigram and bigram language models by flat maximum
// likelihood and scores sentences under them.
//
// Both estimators count units over the whole corpus and divide every count by
// the grand total of the table, storing the natural log. For bigrams this is
// a joint estimate over pairs, not P(right|left). Units absent from a table
// contribute 0 to a sentence score rather than a penalty.
//
// Trained tables are never mutated and may be shared between goroutines.
package lm

import (
	"fmt"
	"math"

	"ngram/internal/domain"
)

// Estimator turns token sequences into counted units.
type Estimator interface {
	Order() domain.Order

	// Frame prepares a tokenised training sentence before units are taken.
	Frame(seq domain.TokenSequence) domain.TokenSequence

	// FrameSentence prepares a raw sentence before it is normalised and
	// tokenised for scoring.
	FrameSentence(sentence string) string

	// Units returns the keys counted or looked up for a framed sequence.
	Units(tokens []string) []string
}

// EstimatorFor returns the estimator of the given order.
func EstimatorFor(order domain.Order) (Estimator, error) {
	switch order {
	case domain.Unigram:
		return UnigramEstimator{}, nil
	case domain.Bigram:
		return BigramEstimator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOrder, order)
	}
}

// Count accumulates the units of every sequence into a new CountTable.
func Count(est Estimator, seqs []domain.TokenSequence) domain.CountTable {
	counts := make(domain.CountTable)
	for _, seq := range seqs {
		for _, unit := range est.Units(est.Frame(seq)) {
			counts[unit]++
		}
	}
	return counts
}

// LogProbabilities divides each count by the table total and takes the
// natural log. An empty table yields an empty ProbabilityTable.
func LogProbabilities(counts domain.CountTable) domain.ProbabilityTable {
	table := make(domain.ProbabilityTable, len(counts))
	total := counts.Total()
	if total == 0 {
		return table
	}
	denom := float64(total)
	for unit, n := range counts {
		if n <= 0 {
			continue
		}
		table[unit] = math.Log(float64(n) / denom)
	}
	return table
}

// Train counts and normalises seqs with est.
func Train(est Estimator, seqs []domain.TokenSequence) domain.ProbabilityTable {
	return LogProbabilities(Count(est, seqs))
}

// TrainUnigram builds a unigram table over every token of seqs.
func TrainUnigram(seqs []domain.TokenSequence) domain.ProbabilityTable {
	return Train(UnigramEstimator{}, seqs)
}

// TrainBigram builds a bigram table over adjacent pairs of the
// sentinel-wrapped seqs.
func TrainBigram(seqs []domain.TokenSequence) domain.ProbabilityTable {
	return Train(BigramEstimator{}, seqs)
}

// Mass returns the sum of exp(p) over the table; 1 for a trained table.
func Mass(table domain.ProbabilityTable) float64 {
	sum := 0.0
	for _, p := range table {
		sum += math.Exp(p)
	}
	return sum
}
