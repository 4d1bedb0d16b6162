package lm

import "ngram/internal/domain"

// UnigramEstimator counts single tokens.
type UnigramEstimator struct{}

func (UnigramEstimator) Order() domain.Order { return domain.Unigram }

func (UnigramEstimator) Frame(seq domain.TokenSequence) domain.TokenSequence { return seq }

func (UnigramEstimator) FrameSentence(sentence string) string { return sentence }

func (UnigramEstimator) Units(tokens []string) []string { return tokens }
