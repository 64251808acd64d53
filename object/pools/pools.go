// Package pools provides reusable byte-slice and string-builder scratch
// space for the object package, standing in for the fixed-size C stack
// buffers spec.md's design notes describe for materializing Int payloads
// during comparison and numeric coercion (32/128 bytes suffice there).
// Go has no stack-allocated variable-length buffers with that lifetime
// guarantee across function boundaries, so a sync.Pool is the idiomatic
// substitute — ported from this codebase's own buffer-pool convention.
package pools

import (
	"bytes"
	"strings"
	"sync"
)

// ByteSlicePool provides reusable byte slices for scratch formatting
// (the strconv.AppendInt scratch space of object/shared.go's formatInt).
var ByteSlicePool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 128)
		return &b
	},
}

// BufferPool provides reusable byte buffers, used by the api package's
// JSON response writer to avoid allocating a fresh buffer per request.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// GetBuffer gets a buffer from the pool, reset to empty.
func GetBuffer() *bytes.Buffer {
	buf := BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 1<<20 { // don't pool buffers over 1MB
		return
	}
	BufferPool.Put(buf)
}

// StringBuilderPool provides reusable string builders for formatting
// paths that build up output incrementally (command/dispatch.go's MEMORY
// DOCTOR reply rendering).
var StringBuilderPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// GetByteSlice gets a byte slice from the pool, reset to zero length.
func GetByteSlice() *[]byte {
	b := ByteSlicePool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// PutByteSlice returns a byte slice to the pool.
func PutByteSlice(b *[]byte) {
	if cap(*b) > 4096 { // Don't pool oversized slices
		return
	}
	ByteSlicePool.Put(b)
}

// GetStringBuilder gets a string builder from the pool, reset to empty.
func GetStringBuilder() *strings.Builder {
	sb := StringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// PutStringBuilder returns a string builder to the pool.
func PutStringBuilder(sb *strings.Builder) {
	StringBuilderPool.Put(sb)
}
