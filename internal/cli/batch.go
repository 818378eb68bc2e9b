package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyzer"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchNoCache bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir | list-file>",
	Short: "Analyze multiple documents in parallel",
	Long: `Batch analyzes many documents concurrently:
- A directory is walked for supported documents
- A regular file is read as a list of paths (one per line, # comments allowed)
- Each document gets an isolated analysis on the worker pool
- One JSON and one Markdown report is written per document

Example:
  legaldoc batch ./contracts
  legaldoc batch files.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./legaldoc-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Legaldoc Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:      %s\n", input)
	fmt.Fprintf(os.Stderr, "  Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir: %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:    %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !batchNoCache
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	engine := analyzer.New(cfg.Analyzer)
	processor := worker.NewBatchProcessor(engine, newStore(cfg), concurrency, cfg.Cache.DiskTTL)

	fmt.Fprintf(os.Stderr, "⚙️  Analyzing documents with %d workers...\n", concurrency)
	results, err := processor.Process(ctx, input)
	if err != nil {
		return fmt.Errorf("batch processing: %w", err)
	}

	renderer := analyzer.NewRenderer(cfg.Output.IncludeFooter)
	succeeded, failed := 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Err)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")
		if err := renderer.RenderJSON(res.Result, jsonPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(res.Result, filepath.Base(res.Path), mdPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}

		succeeded++
		if verbose {
			cached := ""
			if res.Cached {
				cached = " (cached)"
			}
			fmt.Fprintf(os.Stderr, "✓ %s: %d clauses, %d obligations%s\n",
				res.Path, len(res.Result.Clauses), len(res.Result.Obligations), cached)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Analyzed: %d\n", succeeded)
	fmt.Fprintf(os.Stderr, "  Failed:   %d\n", failed)
	fmt.Fprintf(os.Stderr, "  Reports:  %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failed > 0 && succeeded == 0 {
		return fmt.Errorf("all %d documents failed", failed)
	}
	return nil
}
