// FILE: lixenwraith/parseit/cache.go
package parseit

import (
	"sync"
	"time"
)

// fileState identifies one version of a file on disk
type fileState struct {
	modTime time.Time
	size    int64
}

type cachedFile struct {
	state fileState
	data  map[string]any
}

// fileCache keeps parsed file contents keyed by path. An entry is only served
// while the file's modification time and size are unchanged.
type fileCache struct {
	mu      sync.RWMutex
	entries map[string]cachedFile
}

func newFileCache() *fileCache {
	return &fileCache{entries: make(map[string]cachedFile)}
}

func (c *fileCache) get(path string, state fileState) (map[string]any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[path]
	if !ok || !entry.state.modTime.Equal(state.modTime) || entry.state.size != state.size {
		return nil, false
	}
	return entry.data, true
}

func (c *fileCache) put(path string, state fileState, data map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = cachedFile{state: state, data: data}
}

// len returns the number of cached files
func (c *fileCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
