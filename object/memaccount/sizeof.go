// Package memaccount implements the approximate memory accounting and
// introspection formulas of spec.md §4.6: sizeOf, per-kind overhead
// breakdowns, and the sampling-based estimation used for large
// aggregates so OBJECT/MEMORY commands stay O(samples) instead of
// O(size) (spec.md §7's latency-budget constraint).
//
// Adapted from this codebase's own memory_monitor.go (storage/binary),
// generalized from process-wide GC pressure sampling to per-value size
// estimation; the pressure-sampling half of that file lives on in
// monitor.go.
package memaccount

import (
	"valuecore/config"
	"valuecore/object"
	"valuecore/object/container"
)

// Size estimates, in the same units as the source's sizeof(T) operator:
// the approximate in-memory footprint of the Value header itself and of
// the small per-encoding wrapper structs. These are fixed constants
// rather than unsafe.Sizeof measurements, matching how a real allocator-
// size estimate is typically a documented constant, not a runtime probe.
const (
	headerSize         = 56 // Value struct: kind+encoding+refcount+evictionMeta+payload iface+one inline field
	stringMetaOverhead = 2  // EmbStr length/flags overhead, spec.md §4.6
	quicklistWrapper   = 32
	intsetHeader       = 16
	hashtableWrapper   = 48
	zsetWrapper        = 40
	skiplistNodeSize   = 64
	entryOverhead      = 16
	allocRoundUp       = 16 // allocator size-class rounding, approximated
)

func roundAlloc(n int) int {
	if n%allocRoundUp == 0 {
		return n
	}
	return n + (allocRoundUp - n%allocRoundUp)
}

// SizeOf returns an approximate byte footprint for v, sampling up to
// samples elements for the aggregate encodings whose exact size would
// require a full walk (spec.md §4.6). samples <= 0 means "all": every
// element is walked, at O(size) cost. SizeOf never substitutes
// DefaultSamples itself; callers that want the default budget pass
// DefaultSamples() explicitly.
func SizeOf(v *object.Value, samples int) int {
	switch v.Kind() {
	case object.KindString:
		return sizeOfString(v)
	case object.KindList:
		return sizeOfList(v, samples)
	case object.KindSet:
		return sizeOfSet(v, samples)
	case object.KindHash:
		return sizeOfHash(v, samples)
	case object.KindSortedSet:
		return sizeOfSortedSet(v, samples)
	case object.KindModule:
		return headerSize
	default:
		return headerSize
	}
}

func sizeOfString(v *object.Value) int {
	switch v.Encoding() {
	case object.EncInt:
		return headerSize
	case object.EncEmbStr:
		return v.EmbeddedLen() + stringMetaOverhead + headerSize
	case object.EncRaw:
		return headerSize + roundAlloc(v.RawCap())
	}
	return headerSize
}

func sizeOfList(v *object.Value, samples int) int {
	switch v.Encoding() {
	case object.EncZipList:
		zl := v.Payload().(*container.ZipList)
		return headerSize + zl.BlobLen()
	case object.EncQuickList:
		ql := v.Payload().(*container.QuickList)
		n := samples
		if n <= 0 {
			n = ql.NodeCount()
		}
		total, visited := 0, 0
		ql.Walk(n, func(node *container.QuickListNode) {
			total += node.NodeByteSize()
			visited++
		})
		avg := 0
		if visited > 0 {
			avg = total / visited
		}
		return headerSize + quicklistWrapper + avg*ql.NodeCount()
	}
	return headerSize
}

func sizeOfSet(v *object.Value, samples int) int {
	switch v.Encoding() {
	case object.EncIntSet:
		is := v.Payload().(*container.IntSet)
		return headerSize + intsetHeader + is.Encoding()*is.Len()
	case object.EncHT:
		return sizeOfHashTable(v.Payload().(*container.HashTable), samples)
	}
	return headerSize
}

func sizeOfHash(v *object.Value, samples int) int {
	switch v.Encoding() {
	case object.EncZipList:
		zl := v.Payload().(*container.ZipList)
		return headerSize + zl.BlobLen()
	case object.EncHT:
		return sizeOfHashTable(v.Payload().(*container.HashTable), samples)
	}
	return headerSize
}

func sizeOfHashTable(ht *container.HashTable, samples int) int {
	n := samples
	if n <= 0 {
		n = ht.Len()
	}
	total, visited := 0, 0
	ht.Iterate(n, func(key string, value []byte) {
		total += entryOverhead + roundAlloc(len(key))
		if value != nil {
			total += roundAlloc(len(value))
		}
		visited++
	})
	avg := 0
	if visited > 0 {
		avg = total / visited
	}
	return headerSize + hashtableWrapper + ht.BucketBytes() + ht.BloomBytes() + avg*ht.Len()
}

func sizeOfSortedSet(v *object.Value, samples int) int {
	switch v.Encoding() {
	case object.EncZipList:
		zl := v.Payload().(*container.ZipList)
		return headerSize + zl.BlobLen()
	case object.EncSkipList:
		return sizeOfSkipListSortedSet(v, samples)
	}
	return headerSize
}

// sizeOfSkipListSortedSet reaches the unexported sortedSetPayload through
// object.SortedSetContainers, exposed for exactly this purpose.
func sizeOfSkipListSortedSet(v *object.Value, samples int) int {
	scores, byName := object.SortedSetContainers(v)
	n := samples
	if n <= 0 {
		n = scores.Len()
	}
	total, visited := 0, 0
	scores.Walk(n, func(score float64, member string) {
		total += entryOverhead + roundAlloc(len(member)) + skiplistNodeSize
		visited++
	})
	avg := 0
	if visited > 0 {
		avg = total / visited
	}
	return headerSize + zsetWrapper + byName.BucketBytes() + avg*scores.Len()
}

// DefaultSamples returns the process-wide default sampling budget
// (spec.md §4.6, OBJ_COMPUTE_SIZE_DEF_SAMPLES), read from config so
// tests can override it per-process.
func DefaultSamples() int {
	if n := config.Current().DefaultSamples; n > 0 {
		return n
	}
	return object.DefaultSamples
}
