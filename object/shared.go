package object

import (
	"strconv"

	"github.com/google/uuid"

	"valuecore/object/pools"
)

// sharedIntegers is the pre-populated table of immortal small-integer
// string values (spec.md §4.5): exactly one entry for every integer in
// [0, SharedIntLimit), populated once at startup and never mutated.
// Safe to read from any goroutine with no synchronization because every
// entry is immutable once init() returns.
var sharedIntegers [SharedIntLimit]*Value

// wellKnownEntry pairs a pre-built singleton reply/error value with a
// stable debug identifier, so introspection/log output can refer to
// "which well-known singleton" without printing the full payload.
type wellKnownEntry struct {
	ID    uuid.UUID
	Value *Value
}

// wellKnown holds a small collection of pre-built singleton string
// values the command layer reuses instead of allocating fresh ones for
// common replies (spec.md §4.5's "small collection of pre-built
// well-known reply/error values").
var wellKnown map[string]wellKnownEntry

func init() {
	for i := 0; i < SharedIntLimit; i++ {
		v := &Value{
			kind:     KindString,
			encoding: EncInt,
			refcount: Shared,
			intVal:   int64(i),
		}
		sharedIntegers[i] = v
	}

	wellKnown = make(map[string]wellKnownEntry, 4)
	for _, s := range []string{"", "OK", "PONG", "QUEUED"} {
		wellKnown[s] = wellKnownEntry{
			ID:    uuid.New(),
			Value: makeSharedString(s),
		}
	}
}

// makeSharedString builds an immortal EmbStr (or Raw, if it exceeds the
// embedding threshold) singleton — used only during init() for the
// well-known reply table, never after startup.
func makeSharedString(s string) *Value {
	if len(s) <= EmbStrLimit {
		return &Value{kind: KindString, encoding: EncEmbStr, refcount: Shared, embedded: s}
	}
	return &Value{kind: KindString, encoding: EncRaw, refcount: Shared, raw: newRawString([]byte(s))}
}

// SharedInt returns the immortal singleton for v if it is within
// [0, SharedIntLimit), and ok == true. Callers must not incr/decr the
// returned value on the assumption it behaves like a fresh allocation —
// Incr/Decr already no-op on Shared values, so this is safe to treat
// exactly like any other *Value.
func SharedInt(v int64) (value *Value, ok bool) {
	if v < 0 || v >= SharedIntLimit {
		return nil, false
	}
	return sharedIntegers[v], true
}

// WellKnown returns the pre-built immortal singleton for one of the
// small set of common reply strings ("", "OK", "PONG", "QUEUED"), or nil
// if s is not one of them.
func WellKnown(s string) *Value {
	if e, ok := wellKnown[s]; ok {
		return e.Value
	}
	return nil
}

// WellKnownDebugID returns the stable debug identifier assigned to a
// well-known singleton at startup, for log correlation.
func WellKnownDebugID(s string) (uuid.UUID, bool) {
	if e, ok := wellKnown[s]; ok {
		return e.ID, true
	}
	return uuid.UUID{}, false
}

// formatInt is a small shared helper: the decimal rendering of v, built
// in a pooled scratch buffer rather than letting strconv.FormatInt
// allocate a fresh one on every call — every EncInt value's string form
// is rendered through here (Length, AsDouble, Compare, GetDecodedView),
// so this is a genuinely hot path for any integer-heavy keyspace.
func formatInt(v int64) string {
	b := pools.GetByteSlice()
	defer pools.PutByteSlice(b)
	*b = strconv.AppendInt(*b, v, 10)
	return string(*b)
}
