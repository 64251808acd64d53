package object

import (
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"valuecore/logger"
)

// CheckKind returns ErrWrongType if v's Kind does not match want — the
// single check every command handler runs before touching a value's
// payload (spec.md §7's "wrong kind" user-protocol error class).
func CheckKind(v *Value, want Kind) error {
	if v.kind != want {
		return ErrWrongType
	}
	return nil
}

// Length reports the logical element count of v: byte length for
// strings, item count for aggregates. For an Int value it is the length
// of the integer's decimal rendering, matching STRLEN's behavior on
// integer-encoded strings.
func Length(v *Value) int {
	switch v.kind {
	case KindString:
		switch v.encoding {
		case EncInt:
			return len(formatInt(v.intVal))
		case EncEmbStr:
			return len(v.embedded)
		case EncRaw:
			return v.raw.Len()
		}
	case KindList:
		switch v.encoding {
		case EncZipList:
			return v.payload.(interface{ Len() int }).Len()
		case EncQuickList:
			return v.payload.(interface{ Len() int }).Len()
		}
	case KindSet:
		return v.payload.(interface{ Len() int }).Len()
	case KindHash:
		switch v.encoding {
		case EncZipList:
			return v.payload.(interface{ Len() int }).Len() / 2
		case EncHT:
			return v.payload.(interface{ Len() int }).Len()
		}
	case KindSortedSet:
		switch v.encoding {
		case EncZipList:
			return v.payload.(interface{ Len() int }).Len() / 2
		case EncSkipList:
			return v.payload.(*sortedSetPayload).scores.Len()
		}
	}
	logger.Panic("object: Length unsupported for kind=%s encoding=%s", v.kind, v.encoding.WireName())
	panic("unreachable")
}

// AsInt parses v's string form as a signed-word integer under the same
// strict full-string rules parseStrictInt64 enforces (spec.md §4.4).
func AsInt(v *Value) (int64, error) {
	if err := CheckKind(v, KindString); err != nil {
		return 0, err
	}
	if v.encoding == EncInt {
		return v.intVal, nil
	}
	n, ok := parseStrictInt64(string(stringBytes(v)))
	if !ok {
		return 0, ErrNotAnInteger
	}
	return n, nil
}

// AsDouble parses v's string form as a float64.
func AsDouble(v *Value) (float64, error) {
	if err := CheckKind(v, KindString); err != nil {
		return 0, err
	}
	var s string
	if v.encoding == EncInt {
		s = formatInt(v.intVal)
	} else {
		s = string(stringBytes(v))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotAFloat
	}
	return f, nil
}

// AsLongDouble is AsDouble under the name spec.md §4.4 uses for the
// source's extended-precision accessor; Go has no wider floating type
// than float64 in the standard numeric tower, so this is an alias kept
// for call-site parity with the source command set (e.g. INCRBYFLOAT).
func AsLongDouble(v *Value) (float64, error) {
	return AsDouble(v)
}

// CompareMode selects the ordering Compare applies to two string values.
type CompareMode int

const (
	// CompareBinary orders by raw byte value — the default, used
	// wherever sort stability and cross-process determinism matter more
	// than locale-aware ordering (spec.md §4.4).
	CompareBinary CompareMode = iota
	// CompareCollate orders using locale collation rules, for commands
	// that opt into locale-aware sorting (e.g. SORT ALPHA with a
	// configured locale) at the cost of losing strict byte-order
	// determinism across differently-configured processes.
	CompareCollate
)

// defaultCollator is the collation used by CompareCollate. A single
// shared collator is safe for concurrent use; golang.org/x/text/collate
// documents Collator.Compare as safe to call from multiple goroutines.
var defaultCollator = collate.New(language.Und)

// Compare orders two string-kind values under the given mode, returning
// a value <0, 0, or >0 like bytes.Compare/strings.Compare.
func Compare(a, b *Value, mode CompareMode) int {
	ab, bb := stringFormOf(a), stringFormOf(b)
	switch mode {
	case CompareCollate:
		return defaultCollator.Compare(ab, bb)
	default:
		switch {
		case string(ab) < string(bb):
			return -1
		case string(ab) > string(bb):
			return 1
		default:
			return 0
		}
	}
}

// Equals reports whether a and b hold the same logical string content,
// regardless of encoding (an EncInt 7 and an EncEmbStr "7" are equal).
func Equals(a, b *Value) bool {
	return Compare(a, b, CompareBinary) == 0
}

func stringFormOf(v *Value) []byte {
	if v.encoding == EncInt {
		return []byte(formatInt(v.intVal))
	}
	return stringBytes(v)
}
