package object

import (
	"strconv"
	"strings"

	"valuecore/config"
	"valuecore/logger"
)

// tryEncodeIntLimit is the maximum string length tryEncode will even
// attempt to parse as an integer (spec.md §4.1 step 4): "length ≤ 20"
// bounds the cost of the attempt since 20 digits covers every signed
// 64-bit value including the sign.
const tryEncodeIntLimit = 20

// MakeRaw constructs a String value in the Raw encoding: an
// independently allocated, mutable-capacity byte buffer.
func MakeRaw(b []byte) *Value {
	buf := make([]byte, len(b))
	copy(buf, b)
	v := &Value{
		kind:     KindString,
		encoding: EncRaw,
		refcount: 1,
		raw:      newRawString(buf),
	}
	initEviction(v)
	return v
}

// MakeEmbedded constructs a String value in the EmbStr encoding. The
// bytes are interned through shortStringPool (internpool.go) so that
// repeated short values sharing identical content don't each carry their
// own backing array — a memory optimization MakeEmbedded's callers get
// for free since the embedded string is immutable for the header's life
// anyway. A nil b is treated as an empty string.
func MakeEmbedded(b []byte) *Value {
	s := shortStringPool.intern(string(b))
	v := &Value{
		kind:     KindString,
		encoding: EncEmbStr,
		refcount: 1,
		embedded: s,
	}
	initEviction(v)
	return v
}

// MakeString is the public string constructor: it picks EmbStr or Raw
// based on config.Current().EmbstrLimit (spec.md §4.1's EMBSTR_LIMIT,
// default 44 — chosen so the whole allocation fits a 64-byte allocator
// slab alongside the header and string metadata).
func MakeString(b []byte) *Value {
	if len(b) <= config.Current().EmbstrLimit {
		return MakeEmbedded(b)
	}
	return MakeRaw(b)
}

// MakeFromInt constructs an integer-valued String. If v falls inside
// [0, SharedIntLimit) and shared integers are not disabled by policy, it
// returns the immortal singleton for v (incrementing — a no-op, since
// Incr skips Shared values). Otherwise it returns a fresh EncInt value
// with no heap allocation for the payload; every int64 fits the signed
// word EncInt holds, so there is no Raw-string fallback.
func MakeFromInt(v int64) *Value {
	cfg := config.Current()
	if !cfg.SharedIntegersDisabled && v >= 0 && v < SharedIntLimit {
		if shared, ok := SharedInt(v); ok {
			Incr(shared)
			return shared
		}
	}
	fresh := &Value{
		kind:     KindString,
		encoding: EncInt,
		refcount: 1,
		intVal:   v,
	}
	initEviction(fresh)
	return fresh
}

// MakeFromDouble formats v and constructs a String value through
// MakeString. humanFriendly=false uses Go's shortest-round-trip
// exponent-capable formatting ('g'); humanFriendly=true trims trailing
// zeros from a fixed-precision decimal rendering at the cost of exact
// round-trip (spec.md §4.1, Testable Property 6).
func MakeFromDouble(v float64, humanFriendly bool) *Value {
	var s string
	if humanFriendly {
		s = strconv.FormatFloat(v, 'f', 17, 64)
		s = trimTrailingZeros(s)
	} else {
		s = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return MakeString([]byte(s))
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// Dup produces an independent, unshared (refcount=1) copy of v,
// preserving its encoding. Dup never returns a Shared value, even if v
// itself is shared — the whole point of Dup is to hand the caller
// something they can freely mutate or re-encode.
func Dup(v *Value) *Value {
	switch v.kind {
	case KindString:
		switch v.encoding {
		case EncInt:
			return &Value{kind: KindString, encoding: EncInt, refcount: 1, intVal: v.intVal}
		case EncEmbStr:
			return MakeEmbedded([]byte(v.embedded))
		case EncRaw:
			return MakeRaw(v.raw.buf)
		}
	}
	logger.Panic("object: Dup not supported for kind=%s encoding=%s", v.kind, v.encoding.WireName())
	panic("unreachable")
}

// stringBytes returns the decoded bytes of a string-form value (Raw or
// EmbStr). It panics if called on a non-string-form encoding; callers
// that might hold an Int must materialize through GetDecodedView first.
func stringBytes(v *Value) []byte {
	switch v.encoding {
	case EncEmbStr:
		return []byte(v.embedded)
	case EncRaw:
		return v.raw.buf
	default:
		logger.Panic("object: stringBytes called on encoding=%s", v.encoding.WireName())
		panic("unreachable")
	}
}

// parseStrictInt64 parses s as a signed-word integer under the strict
// full-string rules spec.md §4.4/§7 require everywhere numeric coercion
// happens: no leading/trailing whitespace, no partial consumption, no
// empty input, reject overflow.
func parseStrictInt64(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	// Reject inputs strconv would silently accept but that are not a
	// canonical decimal rendering (stray leading '+', etc.) by round-
	// tripping: re-render and require an exact match (so "-0" and leading
	// zeros are rejected too), matching the "full-string consumption"
	// contract.
	if strconv.FormatInt(n, 10) != s {
		return 0, false
	}
	return n, true
}

// tryEncode applies the opportunistic re-encoding policy of spec.md
// §4.1 to freshly parsed string values. Non-string kinds and values
// already in the Int encoding pass through unchanged; shared values
// pass through unchanged (re-encoding an aliased value would violate
// the aliasing contract).
func TryEncode(v *Value) *Value {
	if v.kind != KindString {
		return v
	}
	if v.encoding == EncInt {
		return v
	}
	if v.refcount > 1 {
		return v
	}

	b := stringBytes(v)
	if len(b) <= tryEncodeIntLimit {
		if n, ok := parseStrictInt64(string(b)); ok {
			cfg := config.Current()
			if !cfg.SharedIntegersDisabled && n >= 0 && n < SharedIntLimit {
				if shared, ok := SharedInt(n); ok {
					Decr(v)
					Incr(shared)
					logger.TraceIf("encoding", "promoted string %q to shared int %d", string(b), n)
					return shared
				}
			}
			if v.encoding == EncRaw {
				v.raw = nil
			}
			v.encoding = EncInt
			v.intVal = n
			v.embedded = ""
			logger.TraceIf("encoding", "promoted string %q to EncInt %d in place", string(b), n)
			return v
		}
	}

	if len(b) <= config.Current().EmbstrLimit {
		if v.encoding == EncEmbStr {
			return v
		}
		embedded := MakeEmbedded(b)
		Decr(v)
		logger.TraceIf("encoding", "promoted Raw string to EmbStr (%d bytes)", len(b))
		return embedded
	}

	if v.encoding == EncRaw && v.raw.Cap() > v.raw.Len()+v.raw.Len()/10 {
		v.raw.shrinkToFit()
		logger.TraceIf("encoding", "shrank Raw string capacity to fit (%d bytes)", v.raw.Len())
	}
	return v
}

// GetDecodedView returns a value semantically equivalent to v but
// guaranteed to be in a string-form encoding (Raw or EmbStr). If v is
// already string-form, its refcount is incremented and v is returned
// unchanged; if v is EncInt, a new Raw/EmbStr value is constructed.
// GetDecodedView never modifies v.
func GetDecodedView(v *Value) *Value {
	if v.kind != KindString {
		logger.Panic("object: GetDecodedView called on non-string kind=%s", v.kind)
	}
	switch v.encoding {
	case EncRaw, EncEmbStr:
		Incr(v)
		return v
	case EncInt:
		return MakeString([]byte(formatInt(v.intVal)))
	default:
		logger.Panic("object: GetDecodedView unknown string encoding=%s", v.encoding.WireName())
		panic("unreachable")
	}
}
