package object

import "errors"

// Sentinel errors for the user-protocol error class of spec.md §7.
// These are returned to callers, never used for fatal invariant
// violations — those go through logger.Panic/logger.Fatal instead.
var (
	// ErrWrongType is returned by CheckKind when a value's Kind does not
	// match what the caller expected.
	ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")

	// ErrNotAnInteger is returned by AsInt when the string form does not
	// parse as a full, in-range signed-word integer.
	ErrNotAnInteger = errors.New("value is not an integer or out of range")

	// ErrNotAFloat is returned by AsDouble/AsLongDouble on the same class
	// of parse failure for floating point values.
	ErrNotAFloat = errors.New("value is not a valid float")

	// ErrSyntax is a generic malformed-argument error for the command layer.
	ErrSyntax = errors.New("syntax error")

	// ErrIdleTimeUnderLFU is returned by OBJECT IDLETIME when the process
	// eviction policy is an LFU variant.
	ErrIdleTimeUnderLFU = errors.New("An LFU maxmemory policy is selected, idle time not tracked. Please note that when switching between maxmemory policies at runtime LFU and LRU data will take some time to adjust.")

	// ErrFreqUnderLRU is returned by OBJECT FREQ when the process eviction
	// policy is not an LFU variant.
	ErrFreqUnderLRU = errors.New("An LFU maxmemory policy is not selected, access frequency not tracked. Please note that when switching between maxmemory policies at runtime LFU and LRU data will take some time to adjust.")

	// ErrNoSuchKey reports a key that is not present in the keyspace
	// Store. The OBJECT/MEMORY dispatch does not return it: a missing key
	// there gets a nil reply.
	ErrNoSuchKey = errors.New("no such key")

	// ErrUnknownSubcommand is returned for an unrecognized OBJECT/MEMORY
	// subcommand name.
	ErrUnknownSubcommand = errors.New("unknown subcommand, try HELP")

	// ErrWrongArity is returned when a subcommand is given the wrong
	// number of arguments.
	ErrWrongArity = errors.New("wrong number of arguments")
)
