package worker

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyzer"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/cache"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/parse"
)

// BatchProcessor analyzes many documents in parallel. Every document gets
// its own isolated analysis; only the read-only engine and the cache are
// shared.
type BatchProcessor struct {
	parser   *parse.Parser
	engine   *analyzer.Analyzer
	store    cache.Cache // nil when caching is disabled
	workers  int
	cacheTTL time.Duration
}

// NewBatchProcessor creates a processor backed by a worker pool.
func NewBatchProcessor(engine *analyzer.Analyzer, store cache.Cache, workers int, cacheTTL time.Duration) *BatchProcessor {
	return &BatchProcessor{
		parser:   parse.NewParser(),
		engine:   engine,
		store:    store,
		workers:  workers,
		cacheTTL: cacheTTL,
	}
}

// DocumentResult is the outcome of analyzing one document.
type DocumentResult struct {
	Path   string
	Result *model.AnalysisResult
	Cached bool
	Err    error
}

// GetError implements worker.Result.
func (r *DocumentResult) GetError() error { return r.Err }

// Process analyzes every document named by input: a directory is walked
// for supported files, a regular file is read as a list of paths (one per
// line, # comments allowed). Results come back sorted by path.
func (p *BatchProcessor) Process(ctx context.Context, input string) ([]*DocumentResult, error) {
	paths, err := p.collect(input)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported documents found in %s", input)
	}

	pool := NewPool(p.workers)
	pool.Start()
	for _, path := range paths {
		pool.Submit(&analyzeJob{processor: p, path: path})
	}

	done := make(chan []Result, 1)
	go func() { done <- pool.Wait() }()

	var raw []Result
	select {
	case raw = <-done:
	case <-ctx.Done():
		pool.Shutdown()
		raw = <-done
	}

	results := make([]*DocumentResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*DocumentResult))
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Path < results[b].Path })
	return results, nil
}

func (p *BatchProcessor) collect(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat batch input: %w", err)
	}

	if info.IsDir() {
		var paths []string
		err := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && p.parser.Supported(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", input, err)
		}
		return paths, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}
	return paths, nil
}

// analyzeJob parses and analyzes a single document.
type analyzeJob struct {
	processor *BatchProcessor
	path      string
}

// Execute implements worker.Job.
func (j *analyzeJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &DocumentResult{Path: j.path, Err: err}
	}

	p := j.processor
	text, err := p.parser.Parse(j.path)
	if err != nil {
		return &DocumentResult{Path: j.path, Err: err}
	}

	if p.store != nil {
		if result, found := cache.GetResult(p.store, text); found {
			return &DocumentResult{Path: j.path, Result: result, Cached: true}
		}
	}

	result := p.engine.Analyze(text)
	if p.store != nil {
		_ = cache.SetResult(p.store, text, result, p.cacheTTL) // cache write failure never fails the analysis
	}
	return &DocumentResult{Path: j.path, Result: result}
}
