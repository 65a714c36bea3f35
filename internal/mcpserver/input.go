package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/erraggy/rory/registry"
)

// defaultManifestName is used for inline content when no name is given.
const defaultManifestName = "manifest.yaml"

// manifestInput represents the ways namespace manifests can be provided to a tool.
// At most one of Dir or Content may be set; when neither is, RORY_MANIFEST_DIR is used.
type manifestInput struct {
	Dir     string `json:"dir,omitempty"     jsonschema:"Directory of .hcl/.yaml/.yml namespace manifests"`
	Content string `json:"content,omitempty" jsonschema:"Inline manifest content"`
	Name    string `json:"name,omitempty"    jsonschema:"File name for inline content; its extension selects the decoder (default manifest.yaml)"`
}

// cacheEntry holds a loaded registry with LRU ordering.
type cacheEntry struct {
	reg      *registry.Registry
	insertAt time.Time
}

// registryCacheStore provides a session-scoped cache for loaded registries.
// Directory inputs are keyed by (absolutePath, newest modTime, file count).
// Content inputs are keyed by a SHA-256 hash of name and content.
type registryCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

var registryCache = &registryCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached registry or nil.
func (c *registryCacheStore) get(key string) *registry.Registry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.insertAt = time.Now()
		return e.reg
	}
	return nil
}

// put stores a registry, evicting the least recently used entry if at capacity.
func (c *registryCacheStore) put(key string, reg *registry.Registry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = &cacheEntry{reg: reg, insertAt: time.Now()}
}

// reset clears all cached entries. Used in tests.
func (c *registryCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *registryCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// dirCacheKey fingerprints a manifest directory. An empty key disables caching.
func dirCacheKey(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	var newest int64
	files := 0
	err = filepath.WalkDir(abs, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files++
		newest = max(newest, info.ModTime().UnixNano())
		return nil
	})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("dir:%s:%d:%d", abs, newest, files)
}

func contentCacheKey(name, content string) string {
	h := sha256.Sum256([]byte(name + "\x00" + content))
	return "content:" + hex.EncodeToString(h[:])
}

// resolve loads the registry described by the input, using the cache when enabled.
func (m manifestInput) resolve(ctx context.Context) (*registry.Registry, error) {
	if m.Dir != "" && m.Content != "" {
		return nil, fmt.Errorf("at most one of dir or content may be provided")
	}
	dir := m.Dir
	if dir == "" && m.Content == "" {
		dir = cfg.ManifestDir
	}
	if dir == "" && m.Content == "" {
		return nil, fmt.Errorf("no manifests provided; set dir or content, or configure RORY_MANIFEST_DIR")
	}

	if m.Content != "" && int64(len(m.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use dir input instead, or set RORY_MAX_INLINE_SIZE to increase",
			len(m.Content), cfg.MaxInlineSize)
	}

	name := m.Name
	if name == "" {
		name = defaultManifestName
	}

	var key string
	if cfg.CacheEnabled {
		if dir != "" {
			key = dirCacheKey(dir)
		} else {
			key = contentCacheKey(name, m.Content)
		}
	}
	if key != "" {
		if cached := registryCache.get(key); cached != nil {
			return cached, nil
		}
	}

	reg := registry.New()
	if dir != "" {
		if _, err := reg.LoadDir(ctx, dir); err != nil {
			return nil, err
		}
	} else if _, err := reg.LoadManifest(name, []byte(m.Content)); err != nil {
		return nil, err
	}

	if key != "" {
		registryCache.put(key, reg)
	}
	return reg, nil
}
