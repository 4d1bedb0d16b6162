package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ngram/internal/adapter/fs"
	"ngram/internal/domain"
	"ngram/internal/usecase"
)

var (
	scoreModel    string
	scoreSentence string
	scoreFile     string
	scoreJSON     bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score sentences under a stored model",
	Long: `Score one sentence (-s) or a list of sentences, one per line (-f), under a
stored model. A list is printed from most to least likely. Scores are sums of
natural-log probabilities; unknown units contribute nothing.

Examples:
  ngram score --model alice -s "Alice was beginning to get very tired"
  ngram score --model alice -f candidates.txt --json`,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreModel, "model", "m", "", "model name (required)")
	scoreCmd.Flags().StringVarP(&scoreSentence, "sentence", "s", "", "sentence to score")
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "file with one sentence per line")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output as JSON")
	scoreCmd.MarkFlagRequired("model")
	scoreCmd.MarkFlagsMutuallyExclusive("sentence", "file")
}

func runScore(cmd *cobra.Command, args []string) error {
	if scoreSentence == "" && scoreFile == "" {
		return fmt.Errorf("one of --sentence or --file is required")
	}

	st, err := openStore(false)
	if err != nil {
		return err
	}
	defer st.Close()

	scoreUC := usecase.NewScoreUseCase(st)

	var results []domain.ScoredSentence
	if scoreFile != "" {
		f, err := os.Open(scoreFile)
		if err != nil {
			return err
		}
		sentences, err := fs.ReadWordList(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", scoreFile, err)
		}
		results, err = scoreUC.Rank(scoreModel, sentences)
		if err != nil {
			return fmt.Errorf("scoring failed: %w", err)
		}
	} else {
		results, err = scoreUC.Score(scoreModel, []string{scoreSentence})
		if err != nil {
			return fmt.Errorf("scoring failed: %w", err)
		}
	}

	if scoreJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	for _, r := range results {
		fmt.Printf("%.6f\t%s\n", r.Score, r.Sentence)
	}
	return nil
}
