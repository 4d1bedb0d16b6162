package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ngram/internal/adapter/lm"
	"ngram/internal/domain"
	"ngram/internal/port"
)

// TrainUseCase builds a language model from corpus files and stores it.
type TrainUseCase struct {
	walker port.FileWalker
	reader port.ParagraphReader
	store  port.ModelStore
	logger *zap.Logger
}

// NewTrainUseCase creates a new train use case. A nil logger discards logs.
func NewTrainUseCase(
	walker port.FileWalker,
	reader port.ParagraphReader,
	store port.ModelStore,
	logger *zap.Logger,
) *TrainUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainUseCase{
		walker: walker,
		reader: reader,
		store:  store,
		logger: logger,
	}
}

// TrainOptions selects what is trained and how it is stored.
type TrainOptions struct {
	Name       string
	Order      domain.Order
	Language   domain.Language
	Workers    int
	ConfigHash string

	// Lowercase states that the reader lowercases paragraphs. It is stored
	// with the model so scoring prepares input the same way.
	Lowercase bool

	// DryRun trains without storing the model.
	DryRun bool
}

// TrainResult contains the results of a training run.
type TrainResult struct {
	Model        domain.Model
	FilesRead    int
	FilesSkipped int
	Errors       []string
}

// ProgressFunc reports file progress during corpus reading.
type ProgressFunc func(processed, total int, currentFile string)

// Train reads every corpus file under root, preprocesses it and trains a
// model of opts.Order. Unreadable files are skipped and listed in the
// result. A paragraph with a line break aborts the run, and a corpus with no
// usable sentence is an error.
func (u *TrainUseCase) Train(ctx context.Context, root string, opts TrainOptions, progress ProgressFunc) (*TrainResult, error) {
	if opts.Name == "" && !opts.DryRun {
		return nil, fmt.Errorf("model name is required")
	}

	est, err := lm.EstimatorFor(opts.Order)
	if err != nil {
		return nil, err
	}
	pre, err := NewPreprocessorFor(opts.Language)
	if err != nil {
		return nil, err
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk corpus: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no corpus files found under %s", root)
	}

	u.logger.Info("training started",
		zap.String("root", root),
		zap.String("order", string(opts.Order)),
		zap.String("language", string(opts.Language)),
		zap.Int("files", len(files)))

	result := &TrainResult{}
	var seqs []domain.TokenSequence

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileSeqs, err := u.readFile(pre, file.Path)
		if errors.Is(err, domain.ErrMalformedInput) {
			return nil, fmt.Errorf("%s: %w", file.Path, err)
		}
		if err != nil {
			u.logger.Warn("skipping corpus file", zap.String("path", file.Path), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Path, err))
			result.FilesSkipped++
		} else {
			seqs = append(seqs, fileSeqs...)
			result.FilesRead++
		}

		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	if len(seqs) == 0 {
		return nil, fmt.Errorf("no sentences found under %s", root)
	}

	counts, err := lm.CountParallel(ctx, est, seqs, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to count units: %w", err)
	}
	table := lm.LogProbabilities(counts)

	result.Model = domain.Model{
		ModelInfo: domain.ModelInfo{
			Name:       opts.Name,
			Order:      opts.Order,
			Language:   opts.Language,
			Source:     root,
			Sentences:  len(seqs),
			Total:      counts.Total(),
			Entries:    len(table),
			ConfigHash: opts.ConfigHash,
			CreatedAt:  time.Now().UTC(),
			Lowercase:  opts.Lowercase,
		},
		Table: table,
	}

	u.logger.Info("training finished",
		zap.Int("sentences", len(seqs)),
		zap.Int("total", result.Model.Total),
		zap.Int("entries", len(table)))

	if opts.DryRun {
		return result, nil
	}

	if err := u.store.PutModel(result.Model); err != nil {
		return nil, fmt.Errorf("failed to store model: %w", err)
	}
	u.logger.Info("model stored", zap.String("name", opts.Name))

	return result, nil
}

func (u *TrainUseCase) readFile(pre *Preprocessor, path string) ([]domain.TokenSequence, error) {
	paragraphs, err := u.reader.ReadParagraphs(path)
	if err != nil {
		return nil, err
	}
	return pre.Preprocess(paragraphs)
}
