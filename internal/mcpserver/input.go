package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/schemaview/pipeline"
	"github.com/erraggy/schemaview/refract"
)

// documentInput represents the three ways a refract document can be
// provided to a tool. Exactly one of File, URL, or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a refract document (JSON, YAML, or API Blueprint) on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a refract document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline refract document content (JSON or YAML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Force the input format: json, yaml, or apib"`
}

// cacheEntry holds a cached pipeline result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *pipeline.Result
	insertAt  time.Time
	expiresAt time.Time
}

// documentCacheStore provides a session-scoped cache for processed documents.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. URL inputs are keyed by URL string.
// Entries have per-type TTLs and a background sweeper removes expired entries.
type documentCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var documentCache = &documentCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *documentCacheStore) get(key string) *pipeline.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result with a specific TTL, evicting the oldest entry if at capacity.
func (c *documentCacheStore) putWithTTL(key string, result *pipeline.Result, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	// If already cached, just update.
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	// Evict oldest if at capacity.
	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *documentCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *documentCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	var sweeping atomic.Bool
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !sweeping.CompareAndSwap(false, true) {
					continue
				}
				c.sweep()
				sweeping.Store(false)
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *documentCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *documentCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given document input.
func makeCacheKey(d documentInput) string {
	var key string
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		key = fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		key = fmt.Sprintf("content:%s", hex.EncodeToString(h[:]))
	case d.URL != "":
		key = fmt.Sprintf("url:%s", d.URL)
	default:
		return ""
	}
	if d.Format != "" {
		key += ":" + d.Format
	}
	return key
}

// validate checks that exactly one input is set and inline content is
// within the size limit.
func (d documentInput) validate() error {
	count := 0
	if d.File != "" {
		count++
	}
	if d.URL != "" {
		count++
	}
	if d.Content != "" {
		count++
	}
	if count != 1 {
		return fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SCHEMAVIEW_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}
	return nil
}

// parseOptions returns the refract options that read the document. The
// input source comes first. URL inputs are fetched here.
func (d documentInput) parseOptions(ctx context.Context) ([]refract.Option, error) {
	var source refract.Option
	var extra []refract.Option
	switch {
	case d.File != "":
		source = refract.WithFilePath(d.File)
	case d.URL != "":
		data, err := fetchURL(ctx, d.URL)
		if err != nil {
			return nil, err
		}
		source = refract.WithBytes(data)
		extra = append(extra, refract.WithSourceName(d.URL))
	default:
		source = refract.WithReader(strings.NewReader(d.Content))
	}

	opts := []refract.Option{source, refract.WithDrafterPath(cfg.DrafterPath)}
	if d.Format != "" {
		format, err := refract.ParseSourceFormat(d.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, refract.WithFormat(format))
	}
	return append(opts, extra...), nil
}

// parse decodes the document without running the pipeline.
func (d documentInput) parse(ctx context.Context) (*refract.Result, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	opts, err := d.parseOptions(ctx)
	if err != nil {
		return nil, err
	}
	return refract.ParseWithOptions(opts...)
}

// resolve runs the pipeline on whichever input was provided, using the cache
// for file, URL, and content inputs.
func (d documentInput) resolve(ctx context.Context) (*pipeline.Result, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(d)
		switch {
		case d.File != "":
			ttl = cfg.CacheFileTTL
		case d.URL != "":
			ttl = cfg.CacheURLTTL
		default:
			ttl = cfg.CacheContentTTL
		}
	}

	if key != "" {
		if cached := documentCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts, err := d.parseOptions(ctx)
	if err != nil {
		return nil, err
	}
	result, err := pipeline.Process(ctx, opts[0],
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithParseOptions(opts[1:]...),
	)
	if err != nil {
		return nil, err
	}

	if key != "" {
		documentCache.putWithTTL(key, result, ttl)
	}

	return result, nil
}
