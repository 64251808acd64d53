package container

// HashTable wraps a Go map with the bucket-count bookkeeping
// object/memaccount's size formulas need (spec.md §4.6: "bucket-array
// bytes" and "sampled per-entry cost × entry-count"), plus a bloom
// filter fast path for Contains on large tables — ported from this
// codebase's own "quickly eliminate non-existent items before an
// expensive lookup" rationale, generalized from tag existence to
// general Set/Hash membership.
//
// The bloom filter is additive only: deletions are not reflected in it,
// so it may answer "maybe present" for a removed key (a false positive,
// which only costs a wasted map probe) but never "definitely absent" for
// a key that is actually present (which would be a correctness bug).
type HashTable struct {
	entries map[string][]byte // value is nil for Set members (key presence only)
	bloom   *bloomFilter
}

// NewHashTable creates an empty hash table. expectedItems sizes the
// internal bloom filter; it is a hint, not a hard cap.
func NewHashTable(expectedItems int) *HashTable {
	return &HashTable{
		entries: make(map[string][]byte),
		bloom:   newBloomFilter(uint(expectedItems), 0.01),
	}
}

// Len returns the number of entries.
func (h *HashTable) Len() int { return len(h.entries) }

// Set stores value under key (nil value for Set-style membership-only
// entries).
func (h *HashTable) Set(key string, value []byte) {
	h.entries[key] = value
	h.bloom.add(key)
}

// Contains reports whether key is present, consulting the bloom filter
// first to skip the map probe for definitely-absent keys.
func (h *HashTable) Contains(key string) bool {
	if !h.bloom.mayContain(key) {
		return false
	}
	_, ok := h.entries[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (h *HashTable) Get(key string) ([]byte, bool) {
	v, ok := h.entries[key]
	return v, ok
}

// Delete removes key. See the bloom-filter caveat in the type doc.
func (h *HashTable) Delete(key string) {
	delete(h.entries, key)
}

// Iterate calls fn for up to max entries (max <= 0 means "all"),
// returning the number visited — the primitive object/memaccount.SizeOf
// uses to sample HT entries (spec.md §4.6).
func (h *HashTable) Iterate(max int, fn func(key string, value []byte)) int {
	visited := 0
	for k, v := range h.entries {
		if max > 0 && visited >= max {
			break
		}
		fn(k, v)
		visited++
	}
	return visited
}

// BucketBytes estimates the backing bucket array's footprint — Go maps
// don't expose this directly, so it is approximated as a small constant
// factor over len(entries), matching the shape (not the exact value) a
// real hashtable's bucket-array accounting would have.
func (h *HashTable) BucketBytes() int {
	const avgBucketOverhead = 48
	return len(h.entries) * avgBucketOverhead
}

// BloomBytes returns the bloom filter's own memory footprint.
func (h *HashTable) BloomBytes() int {
	return h.bloom.byteSize()
}

// Release drops the backing map and bloom filter.
func (h *HashTable) Release() {
	h.entries = nil
	h.bloom = nil
}
