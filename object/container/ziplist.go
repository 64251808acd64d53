// Package container implements the aggregate containers spec.md treats
// as external dependencies of fixed contract: quicklist, ziplist,
// hashtable (with iteration), integer set, and skiplist. Their internal
// algorithms are a separate specification (spec.md §1, §9); this package
// gives them a concrete, minimal shape so the constructors in
// object/aggregate.go and the size formulas in object/memaccount have
// something real to operate on.
package container

import "encoding/binary"

// ZipList is a flat, length-prefixed byte blob holding a small sequence
// of entries. It backs the compact encodings used while a List, Hash, or
// SortedSet aggregate is small (spec.md §4.2's "alternate compact
// encoding"). Entries are opaque byte strings to this package; callers
// (object/aggregate.go) interpret pairs of entries as hash field/value or
// zset member/score as needed.
type ZipList struct {
	blob []byte
	n    int
}

// NewZipList creates an empty ziplist.
func NewZipList() *ZipList {
	return &ZipList{blob: make([]byte, 0, 11)}
}

// Len returns the number of entries stored.
func (z *ZipList) Len() int { return z.n }

// BlobLen returns the byte length of the encoded blob — the quantity
// object/memaccount's SizeOf formulas call ziplistBlobLen.
func (z *ZipList) BlobLen() int { return len(z.blob) }

// Append adds an entry to the end of the ziplist.
func (z *ZipList) Append(entry []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(entry)))
	z.blob = append(z.blob, lenBuf[:]...)
	z.blob = append(z.blob, entry...)
	z.n++
}

// Entries decodes and returns every entry in insertion order.
func (z *ZipList) Entries() [][]byte {
	out := make([][]byte, 0, z.n)
	pos := 0
	for pos < len(z.blob) {
		l := int(binary.LittleEndian.Uint32(z.blob[pos : pos+4]))
		pos += 4
		out = append(out, z.blob[pos:pos+l])
		pos += l
	}
	return out
}

// Release drops the ziplist's backing bytes, matching the explicit free
// dispatch spec.md §4.3 describes ("free ziplist bytes"). Go's GC would
// reclaim this regardless once unreferenced; Release exists so
// lifetime.go's free-dispatch table has one call per (kind, encoding)
// branch, symmetric with the container types that do hold OS-level or
// cross-goroutine state.
func (z *ZipList) Release() {
	z.blob = nil
	z.n = 0
}
