package container

// QuickListNode is one node of a QuickList: a doubly-linked list of
// ziplist-blob nodes, the representation a List aggregate is promoted to
// once it outgrows its initial ZipList encoding (spec.md §4.2/§4.6).
type QuickListNode struct {
	blob *ZipList
	next *QuickListNode
	prev *QuickListNode
}

// QuickList is a doubly-linked list of ZipList nodes.
type QuickList struct {
	head  *QuickListNode
	tail  *QuickListNode
	count int // total entries across all nodes
	nodes int // node count
}

// NewQuickList creates an empty quicklist with a single empty node, the
// same "always at least one node" shape a real quicklist keeps to avoid
// special-casing the empty list on every insert.
func NewQuickList() *QuickList {
	node := &QuickListNode{blob: NewZipList()}
	return &QuickList{head: node, tail: node, nodes: 1}
}

// Len returns the number of entries across all nodes.
func (q *QuickList) Len() int { return q.count }

// NodeCount returns the number of ziplist nodes.
func (q *QuickList) NodeCount() int { return q.nodes }

// PushBack appends an entry, growing the tail node's ziplist and
// starting a fresh node once the tail grows past nodeCapacity entries —
// a fixed small constant rather than a byte budget, which keeps this
// container's behavior deterministic for tests.
const nodeCapacity = 128

func (q *QuickList) PushBack(entry []byte) {
	if q.tail.blob.Len() >= nodeCapacity {
		node := &QuickListNode{blob: NewZipList(), prev: q.tail}
		q.tail.next = node
		q.tail = node
		q.nodes++
	}
	q.tail.blob.Append(entry)
	q.count++
}

// Walk invokes fn for up to max nodes starting at the head, returning the
// number of nodes actually visited. max <= 0 means "all nodes" — this is
// the primitive object/memaccount.SizeOf's quicklist sampling walk uses
// (spec.md §4.6: "walking up to samples nodes from the head").
func (q *QuickList) Walk(max int, fn func(node *QuickListNode)) int {
	visited := 0
	for n := q.head; n != nil; n = n.next {
		if max > 0 && visited >= max {
			break
		}
		fn(n)
		visited++
	}
	return visited
}

// NodeByteSize returns the node struct's own footprint plus its
// ziplist's blob length — the per-node cost object/memaccount averages.
func (n *QuickListNode) NodeByteSize() int {
	const nodeHeaderSize = 48 // two pointers + bookkeeping, estimated
	return nodeHeaderSize + n.blob.BlobLen()
}

// Release tears down every node, dropping their ziplist blobs.
func (q *QuickList) Release() {
	for n := q.head; n != nil; {
		n.blob.Release()
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}
	q.head, q.tail = nil, nil
	q.count, q.nodes = 0, 0
}
