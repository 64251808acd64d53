package object

import (
	"valuecore/logger"
	"valuecore/object/container"
)

// Incr increments v's reference count. Shared (immortal) values are a
// no-op, matching the rule that nothing ever increments or decrements an
// immortal singleton's count (spec.md §5, Invariant I-2).
func Incr(v *Value) {
	if v.IsShared() {
		return
	}
	v.refcount++
}

// Decr decrements v's reference count, freeing the payload once the count
// reaches zero. Shared values are a no-op. Decrementing a value already at zero
// is an invariant violation (spec.md §7) and panics rather than silently
// double-freeing.
func Decr(v *Value) {
	if v.IsShared() {
		return
	}
	if v.refcount <= 0 {
		logger.Panic("object: Decr called on value with refcount=%d (kind=%s encoding=%s)", v.refcount, v.kind, v.encoding.WireName())
	}
	v.refcount--
	if v.refcount == 0 {
		free(v)
	}
}

// ResetRef forcibly sets v's reference count to 1, bypassing the normal
// incr/decr discipline. Used only by callers that just took exclusive
// ownership of a value from a place that does not itself hold a
// reference (spec.md §5's "databases point at values without holding a
// reference of their own" design note) — for example, installing a
// freshly-built value into a keyspace slot. It is the caller's
// responsibility to ensure no other reference can still be outstanding.
func ResetRef(v *Value) {
	if v.IsShared() {
		return
	}
	v.refcount = 1
}

// free releases v's payload once its reference count reaches zero,
// dispatching on (kind, encoding) the same way spec.md §4.3 describes:
// the free path is specific to each encoding, not a generic deallocator.
func free(v *Value) {
	switch v.kind {
	case KindString:
		switch v.encoding {
		case EncInt, EncEmbStr:
			// No owned heap payload beyond the Value struct itself.
		case EncRaw:
			v.raw = nil
		default:
			assertValid(v.kind, v.encoding)
		}

	case KindList:
		switch v.encoding {
		case EncZipList:
			v.payload.(*container.ZipList).Release()
		case EncQuickList:
			v.payload.(*container.QuickList).Release()
		default:
			assertValid(v.kind, v.encoding)
		}

	case KindSet:
		switch v.encoding {
		case EncIntSet:
			v.payload.(*container.IntSet).Release()
		case EncHT:
			v.payload.(*container.HashTable).Release()
		default:
			assertValid(v.kind, v.encoding)
		}

	case KindHash:
		switch v.encoding {
		case EncZipList:
			v.payload.(*container.ZipList).Release()
		case EncHT:
			v.payload.(*container.HashTable).Release()
		default:
			assertValid(v.kind, v.encoding)
		}

	case KindSortedSet:
		switch v.encoding {
		case EncZipList:
			v.payload.(*container.ZipList).Release()
		case EncSkipList:
			p := v.payload.(*sortedSetPayload)
			p.scores.Release()
			p.byName.Release()
		default:
			assertValid(v.kind, v.encoding)
		}

	case KindModule:
		if v.encoding != EncModuleBlob {
			assertValid(v.kind, v.encoding)
		}
		v.payload.(*moduleValue).blob = nil

	default:
		logger.Panic("object: free called on unknown kind=%d", uint8(v.kind))
	}

	v.payload = nil
}
