package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

func TestKey(t *testing.T) {
	if !strings.HasPrefix(Key("some text"), "legaldoc:v1:") {
		t.Errorf("expected the versioned key prefix, got %q", Key("some text"))
	}
	if Key("a") == Key("b") {
		t.Error("different texts must hash to different keys")
	}
	if Key("a") != Key("a") {
		t.Error("keys must be deterministic")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected a miss for an unknown key")
	}

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("expected hit with %q, got %q (found=%v)", "v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected a miss after delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected the entry to expire")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("payload"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "payload" {
		t.Errorf("expected hit with %q, got %q (found=%v)", "payload", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected a miss after delete")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, found := c.Get("k"); found {
		t.Error("expected the entry to expire")
	}
	// Expired entries are removed on read.
	if _, found := c.Get("k"); found {
		t.Error("expected the expired entry to stay gone")
	}
}

func TestDiskCache_Clear(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected an empty cache after clear")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	// Write to disk only, bypassing the layered Set.
	if err := c.disk.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}
	if _, found := c.memory.Get("k"); found {
		t.Fatal("memory layer must start cold")
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("expected a disk hit, got %q (found=%v)", val, found)
	}
	if _, found := c.memory.Get("k"); !found {
		t.Error("expected the disk hit to be promoted to memory")
	}
}

func TestLayeredCache_WriteThrough(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.memory.Get("k"); !found {
		t.Error("expected the value in the memory layer")
	}
	if _, found := c.disk.Get("k"); !found {
		t.Error("expected the value in the disk layer")
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected a miss after delete")
	}
}

func TestResultRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	text := "The Supplier shall deliver."
	result := &model.AnalysisResult{
		WordCount:  4,
		TextLength: len(text),
		Summary:    text,
		Obligations: []model.Obligation{
			{Sentence: 0, Text: text, Keyword: "shall", Strength: model.StrengthMandatory},
		},
	}

	if _, found := GetResult(c, text); found {
		t.Fatal("expected a miss before storing")
	}
	if err := SetResult(c, text, result, 0); err != nil {
		t.Fatalf("set result: %v", err)
	}

	got, found := GetResult(c, text)
	if !found {
		t.Fatal("expected a hit after storing")
	}
	if got.WordCount != result.WordCount || got.Summary != result.Summary {
		t.Errorf("round trip mangled the result: %+v", got)
	}
	if len(got.Obligations) != 1 || got.Obligations[0].Keyword != "shall" {
		t.Errorf("round trip mangled obligations: %+v", got.Obligations)
	}
}

func TestGetResult_CorruptEntryIsMiss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	text := "some document"

	if err := c.Set(Key(text), []byte("{not json"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := GetResult(c, text); found {
		t.Error("expected a corrupt entry to read as a miss")
	}
}
