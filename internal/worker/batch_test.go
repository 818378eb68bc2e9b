package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyzer"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/cache"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestEngine() *analyzer.Analyzer {
	return analyzer.New(model.DefaultConfig().Analyzer)
}

func TestBatchProcessor_Directory(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.txt", "The Supplier shall deliver the goods.")
	writeDoc(t, dir, "a.txt", "Liability is capped at fees paid.")
	writeDoc(t, dir, "skip.rtf", "not a supported format")

	p := NewBatchProcessor(newTestEngine(), nil, 2, 0)
	results, err := p.Process(context.Background(), dir)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Results come back sorted by path.
	if filepath.Base(results[0].Path) != "a.txt" || filepath.Base(results[1].Path) != "b.txt" {
		t.Errorf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: unexpected error: %v", r.Path, r.Err)
		}
		if r.Result == nil || r.Result.WordCount == 0 {
			t.Errorf("%s: missing analysis result", r.Path)
		}
	}
}

func TestBatchProcessor_ListFile(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "contract.txt", "Payment is due monthly.")
	list := writeDoc(t, dir, "batch.list", "# documents to analyze\n"+doc+"\n\n")

	p := NewBatchProcessor(newTestEngine(), nil, 1, 0)
	results, err := p.Process(context.Background(), list)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Path != doc || results[0].Err != nil {
		t.Errorf("unexpected result: %+v", results[0])
	}
}

func TestBatchProcessor_PerDocumentErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.txt", "The Client may request revisions.")
	list := writeDoc(t, dir, "batch.list", good+"\n"+filepath.Join(dir, "missing.txt")+"\n")

	p := NewBatchProcessor(newTestEngine(), nil, 2, 0)
	results, err := p.Process(context.Background(), list)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var failed, succeeded int
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			succeeded++
		}
	}
	if failed != 1 || succeeded != 1 {
		t.Errorf("expected 1 failure and 1 success, got %d/%d", failed, succeeded)
	}
}

func TestBatchProcessor_MissingInput(t *testing.T) {
	p := NewBatchProcessor(newTestEngine(), nil, 1, 0)
	if _, err := p.Process(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing input path")
	}
}

func TestBatchProcessor_EmptyDirectory(t *testing.T) {
	p := NewBatchProcessor(newTestEngine(), nil, 1, 0)
	if _, err := p.Process(context.Background(), t.TempDir()); err == nil {
		t.Error("expected an error when no supported documents are found")
	}
}

func TestBatchProcessor_CacheHit(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "contract.txt", "The Vendor must maintain insurance.")

	store := cache.NewMemoryCache(time.Minute, time.Minute)
	p := NewBatchProcessor(newTestEngine(), store, 1, time.Minute)

	first, err := p.Process(context.Background(), dir)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].Cached {
		t.Error("first run must not be a cache hit")
	}

	second, err := p.Process(context.Background(), dir)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].Cached {
		t.Error("second run should hit the cache")
	}
	if second[0].Result.WordCount != first[0].Result.WordCount {
		t.Errorf("cached result differs: %d vs %d", second[0].Result.WordCount, first[0].Result.WordCount)
	}
}

func TestBatchProcessor_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		writeDoc(t, dir, name, "Either party may terminate on notice.")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewBatchProcessor(newTestEngine(), nil, 1, 0)
	results, err := p.Process(ctx, dir)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	// Cancellation stops the pool; whatever did run still comes back,
	// and nothing blocks.
	if len(results) > 3 {
		t.Errorf("expected at most 3 results, got %d", len(results))
	}
}
