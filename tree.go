// Package suffixtree implements a generalized suffix tree over an
// arbitrary number of input strings, plus the string-mining queries
// layered on top of it: adapter discovery, barcode discovery and
// read-length profiling for short-read sequencing data, though nothing
// in the tree itself is sequencing-specific.
package suffixtree

import "go.uber.org/zap"

// Tree is a generalized suffix tree. It is not safe for concurrent use:
// AddString must not be interleaved with a traversal from another
// goroutine, the same way the teacher's Txn documents itself as "not
// thread safe, and should only be used by a single goroutine".
type Tree struct {
	strings StringTable
	arena   []*Node
	root    NodeID
	leaves  []NodeID

	trackTerminalEdges bool
	log                *zap.Logger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithTrackTerminalEdges enables the terminal-edge bookkeeping needed by
// FindSuffixMatchesForPrefix and FindMostCommonSuffixes. Disabled by
// default, since it costs extra map writes whenever insertion attaches or
// exposes a terminator edge.
func WithTrackTerminalEdges() Option {
	return func(t *Tree) {
		t.trackTerminalEdges = true
	}
}

// WithInitialStrings seeds the tree with strings, inserted in order,
// immediately after construction.
func WithInitialStrings(strings ...string) Option {
	return func(t *Tree) {
		for _, s := range strings {
			// Errors are only possible from an empty string or a
			// terminator in the input; New has no error return, so a bad seed string is silently
			// skipped rather than inserted malformed. Callers that need
			// to observe the error should seed via AddString instead.
			if _, err := t.AddString(s); err != nil {
				t.log.Debug("skipped invalid seed string", zap.String("string", s), zap.Error(err))
			}
		}
	}
}

// New constructs an empty Tree and applies opts in order.
func New(opts ...Option) *Tree {
	t := &Tree{
		root: 0,
		log:  zap.NewNop(),
	}
	t.arena = append(t.arena, &Node{parent: nilNode})
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree) node(id NodeID) *Node {
	return t.arena[id]
}

// allocNode appends a new node to the arena and returns its handle.
func (t *Tree) allocNode(n *Node) NodeID {
	id := NodeID(len(t.arena))
	t.arena = append(t.arena, n)
	return id
}

// addChild appends child to parent's children, sets its parent back-
// reference and recomputes its pathLabelLength, per §4.2.
func (t *Tree) addChild(parentID, childID NodeID) {
	parent := t.node(parentID)
	child := t.node(childID)
	parent.children = append(parent.children, childID)
	child.parent = parentID
	child.pathLabelLength = parent.pathLabelLength + child.label.length()
	assertNodeInvariants(t, parentID)
}

// splitEdge splits the edge at childIndex of parent at splitOffset
// characters into the edge, inserting a new internal node in between.
// The former child becomes the new internal node's sole child, with its
// start advanced past the split point. Returns the new internal node's
// handle, per §4.2.
func (t *Tree) splitEdge(parentID NodeID, childIndex int, splitOffset int) NodeID {
	parent := t.node(parentID)
	childID := parent.children[childIndex]
	child := t.node(childID)

	splitID := t.allocNode(&Node{
		label: edgeLabel{
			owner: child.label.owner,
			start: child.label.start,
			end:   child.label.start + splitOffset,
		},
	})
	split := t.node(splitID)
	split.parent = parentID
	split.pathLabelLength = parent.pathLabelLength + split.label.length()
	parent.children[childIndex] = splitID

	child.label.start += splitOffset
	t.addChild(splitID, childID)
	assertNodeInvariants(t, parentID)

	return splitID
}

// addLeafSuffix extends a leaf's leaf-string list with another
// (string id, suffix start) pair, per §4.2.
func (t *Tree) addLeafSuffix(leafID NodeID, id StringID, pos int) {
	t.node(leafID).leafStrings = append(t.node(leafID).leafStrings, leafSuffix{id: id, pos: pos})
}

// AddString appends s to the string table and inserts every suffix of
// the terminated string into the tree, returning the assigned id.
// Resolves the original's "empty-string insertion is undefined" open
// question by rejecting it with ErrEmptyString.
func (t *Tree) AddString(s string) (StringID, error) {
	if s == "" {
		return -1, ErrEmptyString
	}
	id, err := t.strings.Append(s)
	if err != nil {
		return -1, err
	}
	t.log.Debug("adding string", zap.Int("string_id", int(id)), zap.Int("length", len(s)))
	t.addSuffixes(id)
	return id, nil
}

// String returns the terminated string stored under id.
func (t *Tree) String(id StringID) (string, error) {
	return t.strings.Get(id)
}

// NumStrings returns the number of strings inserted so far.
func (t *Tree) NumStrings() int {
	return t.strings.Len()
}
