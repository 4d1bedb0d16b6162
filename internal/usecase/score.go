package usecase

import (
	"fmt"
	"strings"

	"ngram/internal/adapter/analyzer"
	"ngram/internal/adapter/lm"
	"ngram/internal/domain"
	"ngram/internal/port"
)

// ScoreUseCase scores sentences against stored models.
type ScoreUseCase struct {
	store port.ModelStore
}

// NewScoreUseCase creates a score use case. Input sentences are lowercased
// when the model was trained on a lowercased corpus.
func NewScoreUseCase(store port.ModelStore) *ScoreUseCase {
	return &ScoreUseCase{store: store}
}

// Load fetches a model and builds the scorer matching its order and
// language.
func (u *ScoreUseCase) Load(name string) (domain.Model, *lm.Scorer, error) {
	model, err := u.store.GetModel(name)
	if err != nil {
		return domain.Model{}, nil, err
	}
	est, err := lm.EstimatorFor(model.Order)
	if err != nil {
		return domain.Model{}, nil, fmt.Errorf("model %s: %w", name, err)
	}
	rules, err := analyzer.RulesFor(model.Language)
	if err != nil {
		return domain.Model{}, nil, fmt.Errorf("model %s: %w", name, err)
	}
	return model, lm.NewScorer(rules, est), nil
}

// Score scores each sentence under the named model, in input order.
func (u *ScoreUseCase) Score(name string, sentences []string) ([]domain.ScoredSentence, error) {
	model, scorer, err := u.Load(name)
	if err != nil {
		return nil, err
	}

	scored := make([]domain.ScoredSentence, len(sentences))
	for i, sentence := range sentences {
		input := prepare(model, sentence)
		scored[i] = domain.ScoredSentence{
			Sentence: sentence,
			Score:    scorer.Score(input, model.Table),
			Tokens:   len(scorer.Units(input)),
		}
	}
	return scored, nil
}

// Rank scores sentences under the named model and orders them from most to
// least likely.
func (u *ScoreUseCase) Rank(name string, sentences []string) ([]domain.ScoredSentence, error) {
	scored, err := u.Score(name, sentences)
	if err != nil {
		return nil, err
	}
	lm.SortByScore(scored)
	return scored, nil
}

func prepare(model domain.Model, sentence string) string {
	if model.Lowercase {
		return strings.ToLower(sentence)
	}
	return sentence
}
