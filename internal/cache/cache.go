// Package cache stores finished analysis results keyed by a hash of the
// document text. Analyses are pure functions of the text, so a hash hit can
// return the stored result without re-running the engine.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// Cache is the storage interface shared by the memory and disk layers.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a document text.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "legaldoc:v1:" + hex.EncodeToString(hash[:])
}

// GetResult returns the cached analysis for text, if present and decodable.
func GetResult(c Cache, text string) (*model.AnalysisResult, bool) {
	data, found := c.Get(Key(text))
	if !found {
		return nil, false
	}
	var result model.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		// A corrupt entry is a miss; the fresh result overwrites it.
		return nil, false
	}
	return &result, true
}

// SetResult stores the analysis for text.
func SetResult(c Cache, text string, result *model.AnalysisResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cached result: %w", err)
	}
	return c.Set(Key(text), data, ttl)
}
