// Package object implements the polymorphic value object layer: the
// uniform wrapper every stored value passes through, the adaptive
// encoding rules that pick among physical representations to minimize
// memory, the reference-counting and sharing discipline for immortal
// singletons, and the introspection data the MEMORY/OBJECT commands
// project to callers.
//
// Command dispatch, networking, persistence, replication, expiration
// and eviction mechanics live outside this package; it only exposes the
// operations those layers consume.
package object

import "fmt"

// Kind is the closed set of logical value kinds a Value can hold.
type Kind uint8

const (
	KindString Kind = iota
	KindList
	KindSet
	KindHash
	KindSortedSet
	KindModule
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindHash:
		return "hash"
	case KindSortedSet:
		return "zset"
	case KindModule:
		return "module"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Encoding is the closed set of physical representations a Value may use.
// Which encodings are legal for a given Kind is fixed by validPairs below.
type Encoding uint8

const (
	EncRaw Encoding = iota
	EncInt
	EncEmbStr
	EncHT
	EncQuickList
	EncZipList
	EncIntSet
	EncSkipList
	// EncModuleBlob is the encoding for Kind Module. The source this
	// spec is drawn from reuses EncRaw for module values even though they
	// don't hold a dynamic string; we give Module its own encoding so
	// free dispatch (lifetime.go) is a total function with no disguised
	// special case (see SPEC_FULL.md §9, Open Question resolution).
	EncModuleBlob
)

// WireName returns the exact spelling OBJECT ENCODING reports to callers.
// These strings are part of the stable wire contract (spec.md §6).
func (e Encoding) WireName() string {
	switch e {
	case EncRaw:
		return "raw"
	case EncInt:
		return "int"
	case EncEmbStr:
		return "embstr"
	case EncHT:
		return "hashtable"
	case EncQuickList:
		return "quicklist"
	case EncZipList:
		return "ziplist"
	case EncIntSet:
		return "intset"
	case EncSkipList:
		return "skiplist"
	case EncModuleBlob:
		return "module"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// validPairs holds the (kind, encoding) table of spec.md §3: any other
// combination is an implementation bug. It is checked by assertValid,
// which free's per-kind fallback branches (lifetime.go) call; the
// constructors and TryEncode do not call it, and set their
// (kind, encoding) pairs directly.
var validPairs = map[Kind]map[Encoding]bool{
	KindString:    {EncRaw: true, EncEmbStr: true, EncInt: true},
	KindList:      {EncQuickList: true, EncZipList: true},
	KindSet:       {EncHT: true, EncIntSet: true},
	KindHash:      {EncHT: true, EncZipList: true},
	KindSortedSet: {EncSkipList: true, EncZipList: true},
	KindModule:    {EncModuleBlob: true},
}

// assertValid panics (a fatal invariant violation per spec.md §7) if the
// given (kind, encoding) pair is not in the table of spec.md §3.
func assertValid(k Kind, e Encoding) {
	if allowed, ok := validPairs[k]; !ok || !allowed[e] {
		panic(fmt.Sprintf("object: invalid (kind=%s, encoding=%s) pair — implementation bug", k, e.WireName()))
	}
}
