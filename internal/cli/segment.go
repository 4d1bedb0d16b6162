package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ngram/internal/adapter/fs"
	"ngram/internal/domain"
	"ngram/internal/usecase"
)

var (
	segmentOutput     string
	preprocessOutput  string
	preprocessLang    string
	preprocessNoLower bool
)

var segmentCmd = &cobra.Command{
	Use:   "segment FILE",
	Short: "Split a paragraph file into sentences",
	Long: `Read FILE as one paragraph per line and write one sentence per line.

Examples:
  ngram segment alice.txt
  ngram segment alice.txt -o sentences.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

var preprocessCmd = &cobra.Command{
	Use:   "preprocess FILE",
	Short: "Segment, normalise and tokenise a paragraph file",
	Long: `Read FILE as one paragraph per line and write one tokenised sentence per
line, tokens separated by single spaces.

Examples:
  ngram preprocess alice.txt --lang en
  ngram preprocess lettres.txt --lang fr -o tokens.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runPreprocess,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	segmentCmd.Flags().StringVarP(&segmentOutput, "output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(preprocessCmd)
	preprocessCmd.Flags().StringVarP(&preprocessOutput, "output", "o", "", "output file (default stdout)")
	preprocessCmd.Flags().StringVar(&preprocessLang, "lang", "", "language: en or fr (default from config)")
	preprocessCmd.Flags().BoolVar(&preprocessNoLower, "no-lowercase", false, "keep the original case")
}

func runSegment(cmd *cobra.Command, args []string) error {
	// Segmentation sees the text as written.
	paragraphs, err := fs.ReadParagraphs(args[0], false)
	if err != nil {
		return err
	}

	pre, err := usecase.NewPreprocessorFor(domain.English)
	if err != nil {
		return err
	}
	sentences, err := pre.Sentences(paragraphs)
	if err != nil {
		return fmt.Errorf("segmentation failed: %w", err)
	}

	w, closeOut, err := openOutput(segmentOutput)
	if err != nil {
		return err
	}
	if err := fs.WriteParagraphs(w, sentences); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	langTag := cfg.Corpus.Language
	if preprocessLang != "" {
		langTag = preprocessLang
	}
	lang, err := domain.ParseLanguage(langTag)
	if err != nil {
		return err
	}

	paragraphs, err := fs.ReadParagraphs(args[0], cfg.Corpus.Lowercase && !preprocessNoLower)
	if err != nil {
		return err
	}

	pre, err := usecase.NewPreprocessorFor(lang)
	if err != nil {
		return err
	}
	seqs, err := pre.Preprocess(paragraphs)
	if err != nil {
		return fmt.Errorf("preprocessing failed: %w", err)
	}

	lines := make([]string, len(seqs))
	for i, seq := range seqs {
		lines[i] = strings.Join(seq, " ")
	}

	w, closeOut, err := openOutput(preprocessOutput)
	if err != nil {
		return err
	}
	if err := fs.WriteParagraphs(w, lines); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
