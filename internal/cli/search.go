package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyzer"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
)

var (
	searchKeywords string
	searchJSON     string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <file>",
	Short: "Search a document for keywords with surrounding context",
	Long: `Search performs case-insensitive keyword matching across the document
and reports every occurrence with its surrounding context window.

Example:
  legaldoc search contract.pdf --keywords "liability,warranty,termination"
  legaldoc search contract.txt --keywords indemnification --json hits.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchKeywords, "keywords", "", "comma-separated keywords to search (required)")
	searchCmd.Flags().StringVar(&searchJSON, "json", "", "output JSON path (optional)")
	_ = searchCmd.MarkFlagRequired("keywords")
}

func runSearch(cmd *cobra.Command, args []string) error {
	path := args[0]

	var keywords []string
	for _, k := range strings.Split(searchKeywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return fmt.Errorf("no valid keywords provided")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Searching: %s\n", path)
		fmt.Fprintf(os.Stderr, "Keywords:  %s\n\n", strings.Join(keywords, ", "))
	}

	text, err := parse.NewParser().Parse(path)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	cfg := model.DefaultConfig()
	result := analyzer.New(cfg.Analyzer).Search(text, keywords)

	renderer := analyzer.NewRenderer(false)
	if searchJSON != "" {
		if err := renderer.RenderJSON(result, searchJSON); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", searchJSON)
		return nil
	}

	renderer.RenderSearchText(os.Stdout, result, filepath.Base(path))
	return nil
}
