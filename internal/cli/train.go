package cli

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"ngram/internal/adapter/fs"
	"ngram/internal/adapter/memstore"
	"ngram/internal/adapter/store"
	"ngram/internal/domain"
	"ngram/internal/port"
	"ngram/internal/usecase"
)

var (
	trainName    string
	trainOrder   string
	trainLang    string
	trainWorkers int
	trainDryRun  bool
)

var trainCmd = &cobra.Command{
	Use:   "train PATH",
	Short: "Train a language model from a corpus",
	Long: `Train a unigram or bigram model from PATH, a paragraph file or a directory
of them (selected by corpus.includes and corpus.excludes). The model is
stored under --name in .ngram/models.db.

Examples:
  ngram train alice.txt --name alice
  ngram train corpus/ --name fr-uni --order unigram --lang fr
  ngram train corpus/ --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().StringVarP(&trainName, "name", "n", "", "model name (required unless --dry-run)")
	trainCmd.Flags().StringVar(&trainOrder, "order", "", "unigram or bigram (default from config)")
	trainCmd.Flags().StringVar(&trainLang, "lang", "", "language: en or fr (default from config)")
	trainCmd.Flags().IntVarP(&trainWorkers, "workers", "w", 0, "counting workers (default from config)")
	trainCmd.Flags().BoolVar(&trainDryRun, "dry-run", false, "train without storing the model")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	orderName := cfg.Model.Order
	if trainOrder != "" {
		orderName = trainOrder
	}
	order, err := domain.ParseOrder(orderName)
	if err != nil {
		return err
	}

	langTag := cfg.Corpus.Language
	if trainLang != "" {
		langTag = trainLang
	}
	lang, err := domain.ParseLanguage(langTag)
	if err != nil {
		return err
	}

	workers := cfg.Model.Workers
	if trainWorkers > 0 {
		workers = trainWorkers
	}

	if trainName == "" && !trainDryRun {
		return fmt.Errorf("--name is required")
	}

	var st port.ModelStore
	var configHash string
	if trainDryRun {
		st = memstore.NewMemoryStore()
	} else {
		bolt, err := openStore(true)
		if err != nil {
			return err
		}
		defer bolt.Close()
		st = bolt
		configHash = store.ComputeConfigHash(cfg)
	}

	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	reader := fs.NewParagraphReader(cfg.Corpus.Lowercase)
	trainUC := usecase.NewTrainUseCase(walker, reader, st, GetLogger())

	fmt.Printf("Reading %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Reading[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 {
			rate := float64(processed) / time.Since(startTime).Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-processed)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Reading[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := trainUC.Train(cmd.Context(), path, usecase.TrainOptions{
		Name:       trainName,
		Order:      order,
		Language:   lang,
		Workers:    workers,
		ConfigHash: configHash,
		Lowercase:  cfg.Corpus.Lowercase,
		DryRun:     trainDryRun,
	}, progressCallback)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if bolt, ok := st.(*store.BoltStore); ok {
		if err := bolt.Migrate(cfg); err != nil {
			return fmt.Errorf("failed to update schema info: %w", err)
		}
	}

	info := result.Model.ModelInfo
	fmt.Printf("\nTraining complete:\n")
	fmt.Printf("  Order:      %s\n", info.Order)
	fmt.Printf("  Language:   %s\n", info.Language)
	fmt.Printf("  Files read: %d\n", result.FilesRead)
	if result.FilesSkipped > 0 {
		fmt.Printf("  Skipped:    %d\n", result.FilesSkipped)
	}
	fmt.Printf("  Sentences:  %d\n", info.Sentences)
	fmt.Printf("  Units:      %d (%d distinct)\n", info.Total, info.Entries)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if trainDryRun {
		fmt.Println("\nDry run: model not stored.")
	} else {
		fmt.Printf("\nModel %q stored at: %s\n", info.Name, cfg.DBPath(GetRootDir()))
	}
	return nil
}
