package analyzer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// Renderer writes analysis and search results as JSON, Markdown, or
// formatted terminal output.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. The footer can be disabled for reports
// that are diffed or checked into review systems.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the value as indented JSON to path.
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the analysis as a Markdown report to path.
func (r *Renderer) RenderMarkdown(result *model.AnalysisResult, name, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Legal Document Analysis: %s\n\n", name)
	fmt.Fprintf(&b, "- Words: %d\n", result.WordCount)
	fmt.Fprintf(&b, "- Characters: %d\n\n", result.TextLength)

	b.WriteString("## Summary\n\n")
	if result.Summary != "" {
		b.WriteString(result.Summary + "\n\n")
	} else {
		b.WriteString("_No content to summarize._\n\n")
	}

	if len(result.KeyPoints) > 0 {
		b.WriteString("## Key Points\n\n")
		for _, p := range result.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	if len(result.Clauses) > 0 {
		fmt.Fprintf(&b, "## Clauses (%d)\n\n", len(result.Clauses))
		for _, c := range result.Clauses {
			title := c.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(&b, "### %s. %s\n\n", c.ID, title)
			if c.Body != "" {
				b.WriteString(c.Body + "\n\n")
			}
		}
	}

	if len(result.Definitions) > 0 {
		fmt.Fprintf(&b, "## Definitions (%d)\n\n", len(result.Definitions))
		for _, d := range result.Definitions {
			fmt.Fprintf(&b, "- **%s**: %s\n", d.Term, d.Definition)
		}
		b.WriteString("\n")
	}

	if len(result.Obligations) > 0 {
		fmt.Fprintf(&b, "## Obligations (%d)\n\n", len(result.Obligations))
		for _, o := range result.Obligations {
			fmt.Fprintf(&b, "- [%s] %s\n", o.Strength, strings.TrimSpace(o.Text))
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n_Generated by legaldoc. Heuristic structural analysis, not legal advice._\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderText prints the analysis to w in the terminal layout.
func (r *Renderer) RenderText(w io.Writer, result *model.AnalysisResult, name string) {
	rule := strings.Repeat("═", 60)
	sub := strings.Repeat("─", 60)

	fmt.Fprintf(w, "\n%s\n  Legal Document Analysis\n%s\n\n", rule, rule)
	fmt.Fprintf(w, "  Document:   %s\n", name)
	fmt.Fprintf(w, "  Words:      %d\n", result.WordCount)
	fmt.Fprintf(w, "  Characters: %d\n", result.TextLength)

	fmt.Fprintf(w, "\n%s\n  SUMMARY\n%s\n%s\n", sub, sub, result.Summary)

	if len(result.KeyPoints) > 0 {
		fmt.Fprintf(w, "\n%s\n  KEY POINTS\n%s\n", sub, sub)
		for _, p := range result.KeyPoints {
			fmt.Fprintf(w, "  • %s\n", p)
		}
	}

	if len(result.Clauses) > 0 {
		fmt.Fprintf(w, "\n%s\n  CLAUSES (%d)\n%s\n", sub, len(result.Clauses), sub)
		for _, c := range result.Clauses {
			fmt.Fprintf(w, "  Clause %s: %s\n", c.ID, firstN(c.Title+" "+c.Body, 100))
		}
	}

	if len(result.Definitions) > 0 {
		fmt.Fprintf(w, "\n%s\n  DEFINITIONS (%d)\n%s\n", sub, len(result.Definitions), sub)
		for _, d := range result.Definitions {
			fmt.Fprintf(w, "  %q: %s\n", d.Term, firstN(d.Definition, 80))
		}
	}

	if len(result.Obligations) > 0 {
		fmt.Fprintf(w, "\n%s\n  OBLIGATIONS (%d)\n%s\n", sub, len(result.Obligations), sub)
		for _, o := range result.Obligations {
			fmt.Fprintf(w, "  [%s] %s\n", o.Strength, firstN(strings.TrimSpace(o.Text), 100))
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", rule)
}

// RenderSearchText prints search results to w.
func (r *Renderer) RenderSearchText(w io.Writer, result *model.SearchResult, name string) {
	rule := strings.Repeat("═", 60)
	sub := strings.Repeat("─", 60)

	fmt.Fprintf(w, "\n%s\n  Keyword Search\n%s\n\n", rule, rule)
	fmt.Fprintf(w, "  Document:      %s\n", name)
	fmt.Fprintf(w, "  Keywords:      %s\n", strings.Join(result.Keywords, ", "))
	fmt.Fprintf(w, "  Total matches: %d\n", result.TotalMatches)

	// Iterate the query order, not the map, so output is deterministic.
	for _, kw := range result.Keywords {
		snippets, ok := result.Matches[kw]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\n%s\n  %q (%d matches)\n%s\n", sub, kw, len(snippets), sub)
		for i, snip := range snippets {
			fmt.Fprintf(w, "  %d. %s\n", i+1, snip)
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", rule)
}

// firstN truncates s to n runes for single-line display.
func firstN(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
