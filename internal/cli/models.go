package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ngram/internal/adapter/fs"
	"ngram/internal/domain"
	"ngram/internal/usecase"
)

var (
	modelsJSON   bool
	deleteModel  string
	exportModel  string
	exportOutput string
	importName   string
	importOrder  string
	importLang   string
	vocabModel   string
	vocabOutput  string
	vocabLimit   int
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List stored models",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored model",
	Args:  cobra.NoArgs,
	RunE:  runDelete,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a model table as TSV",
	Long: `Write the table of a stored model as "unit<TAB>logprob" rows, most likely
first.

Examples:
  ngram export --model alice -o alice.tsv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Store a model from a TSV table",
	Long: `Read "unit<TAB>logprob" rows from FILE and store them as a model.

Examples:
  ngram import alice.tsv --name alice-copy --order bigram --lang en`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List model units from most to least likely",
	Args:  cobra.NoArgs,
	RunE:  runVocab,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVarP(&deleteModel, "model", "m", "", "model name (required)")
	deleteCmd.MarkFlagRequired("model")

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportModel, "model", "m", "", "model name (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.MarkFlagRequired("model")

	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importName, "name", "n", "", "model name (required)")
	importCmd.Flags().StringVar(&importOrder, "order", "", "unigram or bigram (default from config)")
	importCmd.Flags().StringVar(&importLang, "lang", "", "language: en or fr (default from config)")
	importCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(vocabCmd)
	vocabCmd.Flags().StringVarP(&vocabModel, "model", "m", "", "model name (required)")
	vocabCmd.Flags().StringVarP(&vocabOutput, "output", "o", "", "output file (default stdout)")
	vocabCmd.Flags().IntVarP(&vocabLimit, "limit", "k", 0, "list at most this many units")
	vocabCmd.MarkFlagRequired("model")
}

func runModels(cmd *cobra.Command, args []string) error {
	st, err := openStore(false)
	if err != nil {
		return err
	}
	defer st.Close()

	infos, err := st.ListModels()
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	if modelsJSON {
		output, _ := json.MarshalIndent(infos, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(infos) == 0 {
		fmt.Println("No models stored.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tORDER\tLANG\tSENTENCES\tENTRIES\tCREATED\tSOURCE")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			info.Name, info.Order, info.Language, info.Sentences, info.Entries,
			info.CreatedAt.Format("2006-01-02 15:04"), info.Source)
	}
	return tw.Flush()
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore(false)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteModel(deleteModel); err != nil {
		return err
	}
	fmt.Printf("Deleted model %q\n", deleteModel)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := openStore(false)
	if err != nil {
		return err
	}
	defer st.Close()

	w, closeOut, err := openOutput(exportOutput)
	if err != nil {
		return err
	}
	n, err := usecase.NewTransferUseCase(st).Export(exportModel, w)
	if err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	if exportOutput != "" {
		fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", n, exportOutput)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	orderName := cfg.Model.Order
	if importOrder != "" {
		orderName = importOrder
	}
	order, err := domain.ParseOrder(orderName)
	if err != nil {
		return err
	}
	langTag := cfg.Corpus.Language
	if importLang != "" {
		langTag = importLang
	}
	lang, err := domain.ParseLanguage(langTag)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := openStore(true)
	if err != nil {
		return err
	}
	defer st.Close()

	model, err := usecase.NewTransferUseCase(st).Import(f, domain.ModelInfo{
		Name:     importName,
		Order:    order,
		Language:  lang,
		Source:    args[0],
		Lowercase: cfg.Corpus.Lowercase,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Printf("Imported %d entries as model %q\n", model.Entries, model.Name)
	return nil
}

func runVocab(cmd *cobra.Command, args []string) error {
	st, err := openStore(false)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := usecase.NewTransferUseCase(st).Vocab(vocabModel)
	if err != nil {
		return err
	}
	if vocabLimit > 0 && vocabLimit < len(entries) {
		entries = entries[:vocabLimit]
	}

	units := make([]string, len(entries))
	for i, e := range entries {
		units[i] = e.Unit
	}

	w, closeOut, err := openOutput(vocabOutput)
	if err != nil {
		return err
	}
	if err := fs.WriteWordList(w, units); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}
