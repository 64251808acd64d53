// Bloom filter implementation for fast negative membership checks.
//
// A Bloom filter is a space-efficient probabilistic data structure used
// to test whether an element is a member of a set. False positives are
// possible; false negatives are not — a query returns either "possibly
// in set" or "definitely not in set".
//
// This implementation uses FNV-1a with double hashing to derive k
// independent hash functions from two hash values, same as this
// codebase's tag-existence bloom filter, generalized here to back
// HashTable.Contains's fast path instead of tag existence testing.
package container

import (
	"hash"
	"hash/fnv"
	"math"
	"sync"
)

// bloomFilter provides probabilistic existence testing with very fast
// lookups, used internally by HashTable to avoid a full map probe for
// members that are definitely absent.
type bloomFilter struct {
	bits     []uint64
	k        uint
	m        uint
	n        uint
	hashFunc hash.Hash64
	mu       sync.Mutex
}

func newBloomFilter(expectedItems uint, falsePositiveRate float64) *bloomFilter {
	if expectedItems == 0 {
		expectedItems = 16
	}
	m := uint(math.Ceil(-float64(expectedItems) * math.Log(falsePositiveRate) / math.Pow(math.Log(2), 2)))
	k := uint(math.Ceil(float64(m) / float64(expectedItems) * math.Log(2)))
	m = (m + 63) / 64 * 64
	if k == 0 {
		k = 1
	}

	return &bloomFilter{
		bits:     make([]uint64, m/64),
		k:        k,
		m:        m,
		hashFunc: fnv.New64a(),
	}
}

func (bf *bloomFilter) add(item string) {
	bf.mu.Lock()
	defer bf.mu.Unlock()

	for _, h := range bf.hashes(item) {
		pos := uint(h % uint64(bf.m))
		bf.bits[pos/64] |= 1 << (pos % 64)
	}
	bf.n++
}

func (bf *bloomFilter) mayContain(item string) bool {
	bf.mu.Lock()
	defer bf.mu.Unlock()

	for _, h := range bf.hashes(item) {
		pos := uint(h % uint64(bf.m))
		if bf.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

func (bf *bloomFilter) hashes(item string) []uint64 {
	hashes := make([]uint64, bf.k)

	bf.hashFunc.Reset()
	bf.hashFunc.Write([]byte(item))
	h1 := bf.hashFunc.Sum64()

	bf.hashFunc.Reset()
	bf.hashFunc.Write([]byte(item + "salt"))
	h2 := bf.hashFunc.Sum64()

	for i := uint(0); i < bf.k; i++ {
		hashes[i] = h1 + uint64(i)*h2
	}
	return hashes
}

// byteSize estimates the filter's own memory footprint, in bytes.
func (bf *bloomFilter) byteSize() int {
	return len(bf.bits)*8 + 32
}
