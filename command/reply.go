// Package command implements the OBJECT/MEMORY introspection subcommand
// grammars (spec.md §4.7) on top of object.Store: a minimal reply-writer
// collaborator and subcommand dispatch, the only two pieces spec.md §6
// names as "exposed" that this layer actually has to implement (wire
// framing and exit codes stay the host database's concern).
package command

import "github.com/google/uuid"

// ReplyType is the closed set of reply shapes the source's reply writer
// collaborator emits (spec.md §6): integer, bulk string, error, or
// multi-bulk (array).
type ReplyType int

const (
	ReplyNil ReplyType = iota
	ReplyInteger
	ReplyBulkString
	ReplyError
	ReplyArray
)

// Reply is a single typed response from Dispatch. RequestID tags every
// reply with a stable identifier for log correlation, the same
// convention object/shared.go uses for well-known singleton replies.
type Reply struct {
	Type      ReplyType
	Integer   int64
	Bulk      string
	Err       error
	Array     []Reply
	RequestID uuid.UUID
}

func nilReply() Reply              { return Reply{Type: ReplyNil, RequestID: uuid.New()} }
func intReply(n int64) Reply       { return Reply{Type: ReplyInteger, Integer: n, RequestID: uuid.New()} }
func bulkReply(s string) Reply     { return Reply{Type: ReplyBulkString, Bulk: s, RequestID: uuid.New()} }
func errReply(err error) Reply     { return Reply{Type: ReplyError, Err: err, RequestID: uuid.New()} }
func arrayReply(items []Reply) Reply {
	return Reply{Type: ReplyArray, Array: items, RequestID: uuid.New()}
}
