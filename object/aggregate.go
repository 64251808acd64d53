package object

import "valuecore/object/container"

// sortedSetPayload is the SkipList-encoded SortedSet's payload: a skip
// list ordering (score, member) pairs plus a hashtable mapping member to
// score, so ZSCORE-style lookups don't require a skip-list walk
// (spec.md §4.2: "hashtable mapping member -> score, kept in sync with
// the skiplist for O(1) score lookups").
type sortedSetPayload struct {
	scores *container.SkipList
	byName *container.HashTable
}

// moduleValue is the opaque payload behind Kind Module / EncModuleBlob
// (spec.md §3's closed table, Module row). The module type name is kept
// alongside the blob for OBJECT ENCODING / TYPE introspection; the blob
// itself is never interpreted by this package.
type moduleValue struct {
	typeName string
	blob     []byte
}

// CreateList constructs an empty List value, starting in the compact
// ZipList encoding (spec.md §4.2: lists start compact and are promoted to
// QuickList once they outgrow the compact threshold — promotion itself
// is the command layer's growth policy, not construction).
func CreateList() *Value {
	v := &Value{kind: KindList, encoding: EncZipList, refcount: 1, payload: container.NewZipList()}
	initEviction(v)
	return v
}

// CreateQuickList constructs a List value already in the QuickList
// encoding, for callers (bulk loaders, restore paths) that know up front
// the list will be large.
func CreateQuickList() *Value {
	v := &Value{kind: KindList, encoding: EncQuickList, refcount: 1, payload: container.NewQuickList()}
	initEviction(v)
	return v
}

// CreateSet constructs an empty Set value in the HT encoding — the
// general-purpose encoding used once a set holds any non-integer member
// (spec.md §4.2).
func CreateSet() *Value {
	v := &Value{kind: KindSet, encoding: EncHT, refcount: 1, payload: container.NewHashTable(0)}
	initEviction(v)
	return v
}

// CreateIntSet constructs an empty Set value in the IntSet encoding — the
// compact encoding used while every member parses as an integer.
func CreateIntSet() *Value {
	v := &Value{kind: KindSet, encoding: EncIntSet, refcount: 1, payload: container.NewIntSet()}
	initEviction(v)
	return v
}

// CreateHash constructs an empty Hash value, starting in the compact
// ZipList encoding (field/value pairs stored as adjacent entries).
func CreateHash() *Value {
	v := &Value{kind: KindHash, encoding: EncZipList, refcount: 1, payload: container.NewZipList()}
	initEviction(v)
	return v
}

// CreateHashTable constructs a Hash value already in the HT encoding.
func CreateHashTable() *Value {
	v := &Value{kind: KindHash, encoding: EncHT, refcount: 1, payload: container.NewHashTable(0)}
	initEviction(v)
	return v
}

// CreateSortedSet constructs an empty SortedSet value, starting in the
// compact ZipList encoding (member/score pairs stored as adjacent
// entries, scores serialized as their decimal rendering).
func CreateSortedSet() *Value {
	v := &Value{kind: KindSortedSet, encoding: EncZipList, refcount: 1, payload: container.NewZipList()}
	initEviction(v)
	return v
}

// CreateSkipListSortedSet constructs a SortedSet value already in the
// SkipList encoding, with its paired member->score hashtable.
func CreateSkipListSortedSet() *Value {
	v := &Value{
		kind: KindSortedSet, encoding: EncSkipList, refcount: 1,
		payload: &sortedSetPayload{scores: container.NewSkipList(), byName: container.NewHashTable(0)},
	}
	initEviction(v)
	return v
}

// SortedSetContainers returns the skip list and member->score hashtable
// backing a SkipList-encoded SortedSet value, for object/memaccount's
// sizeOf sampling. Panics if v is not a SortedSet/SkipList value.
func SortedSetContainers(v *Value) (*container.SkipList, *container.HashTable) {
	p := v.payload.(*sortedSetPayload)
	return p.scores, p.byName
}

// CreateModule wraps an opaque module-owned blob in a Value, tagged with
// typeName for introspection. The blob's interpretation is entirely up
// to the module; this package only manages its lifetime.
func CreateModule(typeName string, blob []byte) *Value {
	v := &Value{kind: KindModule, encoding: EncModuleBlob, refcount: 1, payload: &moduleValue{typeName: typeName, blob: blob}}
	initEviction(v)
	return v
}
