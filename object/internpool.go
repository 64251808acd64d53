package object

import (
	"container/list"
	"sync"
)

// internPool deduplicates the backing bytes of short strings seen while
// embedding values (string.go's MakeEmbedded). It is deliberately NOT a
// process-global interner over every string the program touches — only
// MakeEmbedded's EmbStr payloads benefit from recognizing repeats, since
// those are exactly the small, immutable, frequently-repeated payloads
// (short keys, enum-like tag values, small counters formatted as text)
// this layer constructs over and over.
//
// Adapted from this codebase's own bounded string interner
// (a map + container/list LRU with a size cap), generalized from "tag
// strings" to "short string value payloads" and scoped down to a single
// pool instead of a process-wide singleton with configurable memory
// limits — callers that want process-wide interning should use a
// dedicated package for that; this one exists purely to backstop
// MakeEmbedded.
type internPool struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List
	maxSize int
}

func newInternPool(maxSize int) *internPool {
	return &internPool{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// intern returns a deduplicated copy of s: if an identical string is
// already pooled, its backing bytes are returned and s's own copy can be
// discarded by the caller; otherwise s is pooled and returned unchanged.
func (p *internPool) intern(s string) string {
	if s == "" {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if elem, ok := p.entries[s]; ok {
		p.lru.MoveToFront(elem)
		return elem.Value.(string)
	}

	if p.lru.Len() >= p.maxSize {
		if back := p.lru.Back(); back != nil {
			delete(p.entries, back.Value.(string))
			p.lru.Remove(back)
		}
	}

	elem := p.lru.PushFront(s)
	p.entries[s] = elem
	return s
}

// shortStringPool backs MakeEmbedded. Sized generously enough to cover a
// working set of distinct short values without growing unbounded.
var shortStringPool = newInternPool(65536)
