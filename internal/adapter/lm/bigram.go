package lm

import "ngram/internal/domain"

// BigramEstimator counts adjacent token pairs of sentinel-wrapped sentences.
type BigramEstimator struct{}

func (BigramEstimator) Order() domain.Order { return domain.Bigram }

// Frame wraps seq with _BEGIN_ and _END_.
func (BigramEstimator) Frame(seq domain.TokenSequence) domain.TokenSequence {
	return Wrap(seq)
}

// FrameSentence wraps the raw sentence so the sentinels become its first and
// last tokens.
func (BigramEstimator) FrameSentence(sentence string) string {
	return domain.BeginToken + " " + sentence + " " + domain.EndToken
}

func (BigramEstimator) Units(tokens []string) []string {
	return Pairs(tokens)
}

// Wrap returns a copy of seq framed by the sentinel tokens.
func Wrap(seq domain.TokenSequence) domain.TokenSequence {
	out := make(domain.TokenSequence, 0, len(seq)+2)
	out = append(out, domain.BeginToken)
	out = append(out, seq...)
	return append(out, domain.EndToken)
}

// Pairs joins every token that is not _END_ with its successor as
// "left right". A final token without successor is dropped.
func Pairs(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	pairs := make([]string, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i] == domain.EndToken {
			continue
		}
		pairs = append(pairs, tokens[i]+" "+tokens[i+1])
	}
	return pairs
}
