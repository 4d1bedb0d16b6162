package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"ngram/config"
	"ngram/internal/adapter/cache"
	"ngram/internal/adapter/fs"
	"ngram/internal/adapter/store"
	"ngram/internal/usecase"
)

func main() {
	dir := flag.String("dir", ".", "Directory holding .ngram/models.db")
	name := flag.String("model", "", "Model to evaluate")
	heldOut := flag.String("f", "", "Held-out paragraph file")
	show := flag.Int("k", 5, "Number of best and worst sentences to show")
	flag.Parse()

	if *name == "" || *heldOut == "" {
		fmt.Println("Usage: go run cmd/benchmark/main.go -dir . -model alice -f heldout.txt")
		fmt.Println("\nReports:")
		fmt.Println("  1. Unit coverage (share of held-out units present in the model)")
		fmt.Println("  2. Mean log probability per unit over known units")
		fmt.Println("  3. Best and worst scoring held-out sentences")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	st, err := store.NewBoltStore(cfg.DBPath(*dir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening model store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	scoreUC := usecase.NewScoreUseCase(cache.NewModelCache(st, 1, 0))
	model, scorer, err := scoreUC.Load(*name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}

	paragraphs, err := fs.ReadParagraphs(*heldOut, cfg.Corpus.Lowercase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading held-out file: %v\n", err)
		os.Exit(1)
	}
	pre, err := usecase.NewPreprocessorFor(model.Language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sentences, err := pre.Sentences(paragraphs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error segmenting held-out file: %v\n", err)
		os.Exit(1)
	}
	if len(sentences) == 0 {
		fmt.Fprintln(os.Stderr, "Held-out file has no sentences")
		os.Exit(1)
	}

	fmt.Println("LANGUAGE MODEL BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Model:     %s (%s, %s)\n", model.Name, model.Order, model.Language)
	fmt.Printf("Entries:   %d\n", len(model.Table))
	fmt.Printf("Held-out:  %d sentences\n", len(sentences))
	fmt.Println()

	start := time.Now()
	known, total := 0, 0
	logSum := 0.0
	for _, sentence := range sentences {
		for _, unit := range scorer.Units(sentence) {
			total++
			if p, ok := model.Table[unit]; ok {
				known++
				logSum += p
			}
		}
	}

	ranked, err := scoreUC.Rank(*name, sentences)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scoring error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	k := min(*show, len(ranked))
	fmt.Printf("Top %d sentences:\n", k)
	for i := 0; i < k; i++ {
		fmt.Printf("  %d. [%.3f] %s\n", i+1, ranked[i].Score, preview(ranked[i].Sentence))
	}
	fmt.Printf("\nBottom %d sentences:\n", k)
	for i := len(ranked) - k; i < len(ranked); i++ {
		fmt.Printf("  %d. [%.3f] %s\n", i+1, ranked[i].Score, preview(ranked[i].Sentence))
	}

	coverage := 0.0
	if total > 0 {
		coverage = float64(known) / float64(total)
	}
	meanLog := 0.0
	if known > 0 {
		meanLog = logSum / float64(known)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("QUALITY METRICS:\n")
	fmt.Printf("  Unit coverage:       %.1f%% (%d/%d)\n", coverage*100, known, total)
	fmt.Printf("  Mean known log-prob: %.3f\n", meanLog)
	fmt.Printf("  Scoring time:        %s\n", elapsed.Round(time.Millisecond))

	if coverage > 0.8 {
		fmt.Println("  Status: GOOD - held-out text is well covered")
	} else if coverage > 0.5 {
		fmt.Println("  Status: OK - many units are unseen")
	} else {
		fmt.Println("  Status: POOR - train on a larger or closer corpus")
	}
}

func preview(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}
