package object

import "math"

// Wire-contract constants from spec.md §6 — tests and operators depend
// on these exact values.
const (
	// EmbStrLimit is the default maximum string length eligible for the
	// EmbStr encoding, chosen so header + string metadata + bytes fits a
	// 64-byte allocator slab. config.Config.EmbstrLimit can override this
	// per-process for tests that want to exercise the boundary cheaply;
	// MakeString always consults config.Current().EmbstrLimit, which
	// defaults to this constant.
	EmbStrLimit = 44

	// SharedIntLimit bounds the shared-singleton integer registry:
	// exactly one immortal value exists for every integer in [0, SharedIntLimit).
	SharedIntLimit = 10000

	// LFUInit is the initial logarithmic frequency counter value given to
	// freshly constructed values under an LFU eviction policy.
	LFUInit = 5

	// DefaultSamples is OBJ_COMPUTE_SIZE_DEF_SAMPLES: the sampling budget
	// memaccount.DefaultSamples() falls back to when the config gives no
	// positive value. Passing 0 to SizeOf means "all", not this default.
	DefaultSamples = 5
)

// Shared is the sentinel refcount meaning "immortal, never freed, freely
// aliasable across threads". It is chosen as math.MaxInt32 to mirror the
// source representation's use of INT_MAX for a C int refcount field.
const Shared int32 = math.MaxInt32

// Value is the fixed-shape record every stored value passes through.
// Its zero value is never valid — values are only produced by the
// constructors in string.go/aggregate.go.
type Value struct {
	kind     Kind
	encoding Encoding

	// refcount is manipulated exclusively through Incr/Decr/ResetRef.
	// refcount == Shared marks an immortal, unmutable singleton.
	refcount int32

	// evictionMeta packs 24 bits of eviction bookkeeping. Interpretation
	// depends on the process-wide eviction policy (config.Current().EvictionPolicy):
	// LRU mode stores a wrapping, coarse monotonic clock reading in
	// seconds; LFU mode packs a minute-granularity timestamp in the high
	// 16 bits and a logarithmic frequency counter in the low 8 bits.
	evictionMeta uint32

	// intVal holds the payload when encoding == EncInt: a signed-word
	// integer stored directly in the header, no heap allocation.
	intVal int64

	// embedded holds the payload when encoding == EncEmbStr: the string
	// is conceptually inseparable from the header (it is never handed
	// out as a mutable buffer, and its lifetime is exactly the header's).
	embedded string

	// raw holds the payload when encoding == EncRaw: an independently
	// allocated, mutable-capacity dynamic string.
	raw *rawString

	// payload holds the aggregate/module payload for all other kinds:
	// *container.QuickList, *container.ZipList, *container.HashTable,
	// *container.IntSet, *sortedSetPayload, or *moduleValue.
	payload interface{}
}

// rawString is the dynamic-string payload backing the Raw string
// encoding: capacity may exceed length, mirroring spec.md §3's "mutable
// capacity ≥ length, NUL-terminator at [length]" (the NUL terminator
// itself is not meaningful in Go and is not modeled; capacity headroom
// is, since tryEncode's shrink step depends on it).
type rawString struct {
	buf []byte
}

func newRawString(b []byte) *rawString {
	return &rawString{buf: b}
}

func (r *rawString) String() string { return string(r.buf) }
func (r *rawString) Len() int       { return len(r.buf) }
func (r *rawString) Cap() int       { return cap(r.buf) }

// shrinkToFit reallocates buf to exactly len(buf) capacity.
func (r *rawString) shrinkToFit() {
	if cap(r.buf) == len(r.buf) {
		return
	}
	tight := make([]byte, len(r.buf))
	copy(tight, r.buf)
	r.buf = tight
}

// Kind returns the value's logical kind.
func (v *Value) Kind() Kind { return v.kind }

// Encoding returns the value's physical encoding.
func (v *Value) Encoding() Encoding { return v.encoding }

// Refcount returns the current reference count, or Shared for immortal
// singletons.
func (v *Value) Refcount() int32 { return v.refcount }

// IsShared reports whether v is an immortal shared singleton.
func (v *Value) IsShared() bool { return v.refcount == Shared }

// EvictionMeta returns the raw 24-bit eviction metadata field.
func (v *Value) EvictionMeta() uint32 { return v.evictionMeta & 0x00FFFFFF }

// SetEvictionMeta overwrites the 24-bit eviction metadata field. It is a
// no-op on shared singletons, matching their "never mutated" invariant.
func (v *Value) SetEvictionMeta(meta uint32) {
	if v.IsShared() {
		return
	}
	v.evictionMeta = meta & 0x00FFFFFF
}

// Payload returns v's encoding-specific payload (one of the
// *container.* types, *sortedSetPayload, or *moduleValue — the last two
// unexported outside this package), or nil for the header-only string
// encodings.
// Exists so object/memaccount can compute sizeOf without this package
// needing to depend on memaccount's formulas.
func (v *Value) Payload() interface{} { return v.payload }

// IntValue returns the raw integer payload for an EncInt value. Callers
// must check Encoding() == EncInt first.
func (v *Value) IntValue() int64 { return v.intVal }

// EmbeddedLen returns the byte length of an EncEmbStr value's payload.
func (v *Value) EmbeddedLen() int { return len(v.embedded) }

// RawLen and RawCap return the length and allocated capacity of an
// EncRaw value's backing buffer.
func (v *Value) RawLen() int { return v.raw.Len() }
func (v *Value) RawCap() int { return v.raw.Cap() }
