package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyzer"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/cache"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
)

var (
	outJSON      string
	outMD        string
	noCache      bool
	noFooter     bool
	maxSentences int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a legal document and report its structure",
	Long: `Analyze extracts the structural overview of a single document:
- Clauses and sections with their labels and bodies
- Defined terms
- Mandatory and discretionary obligations
- An extractive summary and ranked key points

Example:
  legaldoc analyze contract.pdf
  legaldoc analyze contract.docx --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().IntVar(&maxSentences, "max-sentences", 0, "max sentences in the summary (default from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if maxSentences > 0 {
		cfg.Analyzer.MaxSummarySentences = maxSentences
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n\n", path)
	}

	text, err := parse.NewParser().Parse(path)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	engine := analyzer.New(cfg.Analyzer)
	store := newStore(cfg)

	result, cached := cachedAnalyze(engine, store, text, cfg.Cache.DiskTTL)
	if verbose {
		if cached {
			fmt.Fprintf(os.Stderr, "✓ Result served from cache\n")
		}
		fmt.Fprintf(os.Stderr, "✓ %d words\n", result.WordCount)
		fmt.Fprintf(os.Stderr, "✓ Detected %d clauses\n", len(result.Clauses))
		fmt.Fprintf(os.Stderr, "✓ Extracted %d definitions\n", len(result.Definitions))
		fmt.Fprintf(os.Stderr, "✓ Flagged %d obligations\n", len(result.Obligations))
		fmt.Fprintln(os.Stderr)
	}

	name := filepath.Base(path)
	renderer := analyzer.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, name, outMD); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
	}
	if outJSON == "" && outMD == "" {
		renderer.RenderText(os.Stdout, result, name)
	}

	return nil
}

// cachedAnalyze runs the engine behind the optional result cache and
// reports whether the result came from the cache.
func cachedAnalyze(engine *analyzer.Analyzer, store cache.Cache, text string, ttl time.Duration) (*model.AnalysisResult, bool) {
	if store != nil {
		if result, found := cache.GetResult(store, text); found {
			return result, true
		}
	}
	result := engine.Analyze(text)
	if store != nil {
		_ = cache.SetResult(store, text, result, ttl)
	}
	return result, false
}
