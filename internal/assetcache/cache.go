// Package assetcache keeps decoded article images in memory so that
// re-selecting an article does not decode its file again.
//
// Entries are keyed by file path and validated against the file's size and
// modification time on every lookup; an entry whose file changed or vanished
// is dropped and reported as a miss. Eviction is least-recently-used.
//
// Cache is owned by a single document and is not safe for concurrent use.
package assetcache

import (
	"io/fs"
	"os"
	"time"

	"github.com/gogpu/wardrobe/internal/sprite"
)

// DefaultCapacity is the number of decoded images kept per cache.
const DefaultCapacity = 256

// stamp identifies one version of a file on disk.
type stamp struct {
	size    int64
	modTime time.Time
}

func stampOf(info fs.FileInfo) stamp {
	return stamp{size: info.Size(), modTime: info.ModTime()}
}

func (s stamp) same(o stamp) bool {
	return s.size == o.size && s.modTime.Equal(o.modTime)
}

type entry struct {
	img   *sprite.Image
	stamp stamp
	node  *lruNode
}

// Cache is an LRU cache of decoded images.
type Cache struct {
	entries  map[string]*entry
	lru      lruList
	capacity int
	stat     func(string) (fs.FileInfo, error)

	hits, misses uint64
}

// New creates a cache holding at most capacity images.
// A capacity <= 0 selects DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[string]*entry),
		capacity: capacity,
		stat:     os.Stat,
	}
}

// Load returns the decoded image at path, decoding it on a miss.
// Decode failures are not cached.
func (c *Cache) Load(path string) (*sprite.Image, error) {
	info, err := c.stat(path)
	if err != nil {
		c.Delete(path)
		c.misses++
		return sprite.Load(path)
	}
	st := stampOf(info)

	if e, ok := c.entries[path]; ok {
		if e.stamp.same(st) {
			c.lru.MoveToFront(e.node)
			c.hits++
			return e.img, nil
		}
		c.Delete(path)
	}
	c.misses++

	img, err := sprite.Load(path)
	if err != nil {
		return nil, err
	}
	c.entries[path] = &entry{img: img, stamp: st, node: c.lru.PushFront(path)}
	for len(c.entries) > c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}
	return img, nil
}

// Delete removes path from the cache.
// Returns true if the entry was found and removed.
func (c *Cache) Delete(path string) bool {
	e, ok := c.entries[path]
	if !ok {
		return false
	}
	c.lru.Remove(e.node)
	delete(c.entries, path)
	return true
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.entries = make(map[string]*entry)
	c.lru.Clear()
}

// Len returns the number of cached images.
func (c *Cache) Len() int { return len(c.entries) }

// Capacity returns the maximum number of cached images.
func (c *Cache) Capacity() int { return c.capacity }

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:      len(c.entries),
		Capacity: c.capacity,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}
