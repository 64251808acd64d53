package container

import "sort"

// intEncoding is the packed width used to store every element of an
// IntSet. The set always stores all elements at the width of its
// largest member, promoting in place when a wider value is inserted —
// the same "encoding" field spec.md §4.6's size formula
// (`intset.encoding × intset.length`) refers to.
type intEncoding int

const (
	enc16 intEncoding = 2
	enc32 intEncoding = 4
	enc64 intEncoding = 8
)

// IntSet is a sorted, deduplicated set of int64 values backing the Set
// aggregate's compact encoding when every member parses as an integer
// (spec.md §4.2).
type IntSet struct {
	values   []int64
	encoding intEncoding
}

// NewIntSet creates an empty integer set.
func NewIntSet() *IntSet {
	return &IntSet{encoding: enc16}
}

// Len returns the number of elements.
func (s *IntSet) Len() int { return len(s.values) }

// Encoding returns the current packed width in bytes (2, 4, or 8).
func (s *IntSet) Encoding() int { return int(s.encoding) }

func widthFor(v int64) intEncoding {
	switch {
	case v >= -32768 && v <= 32767:
		return enc16
	case v >= -2147483648 && v <= 2147483647:
		return enc32
	default:
		return enc64
	}
}

// Add inserts v, keeping values sorted and deduplicated, and promotes
// the encoding width if v needs more bits than the set currently uses.
func (s *IntSet) Add(v int64) bool {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] >= v })
	if i < len(s.values) && s.values[i] == v {
		return false
	}
	s.values = append(s.values, 0)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v

	if w := widthFor(v); w > s.encoding {
		s.encoding = w
	}
	return true
}

// Contains reports whether v is a member.
func (s *IntSet) Contains(v int64) bool {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] >= v })
	return i < len(s.values) && s.values[i] == v
}

// Remove deletes v if present, returning whether it was found. The
// encoding width is never shrunk back down, matching the one-directional
// promotion the aggregate containers use in practice.
func (s *IntSet) Remove(v int64) bool {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] >= v })
	if i >= len(s.values) || s.values[i] != v {
		return false
	}
	s.values = append(s.values[:i], s.values[i+1:]...)
	return true
}

// Values returns the sorted members.
func (s *IntSet) Values() []int64 {
	out := make([]int64, len(s.values))
	copy(out, s.values)
	return out
}

// Release drops the backing slice, matching the explicit
// "free integer-set bytes" dispatch of spec.md §4.3.
func (s *IntSet) Release() {
	s.values = nil
}
