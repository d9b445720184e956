package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkTreeInvariants verifies invariants 1, 3 and 4 from spec §3/§8
// across every node in the arena.
func checkTreeInvariants(t *testing.T, tr *Tree) {
	t.Helper()

	for id := 0; id < len(tr.arena); id++ {
		node := tr.node(NodeID(id))

		// Invariant 1: unique edge-first-character among children.
		seen := make(map[byte]bool)
		for _, childID := range node.children {
			child := tr.node(childID)
			owner, err := tr.strings.Get(child.label.owner)
			require.NoError(t, err)
			ch := owner[child.label.start]
			require.Falsef(t, seen[ch], "duplicate first character %q among children of node %d", ch, id)
			seen[ch] = true
		}

		// Invariant 4: path-length consistency.
		if NodeID(id) != tr.root {
			parent := tr.node(node.parent)
			require.Equal(t, parent.pathLabelLength+node.label.length(), node.pathLabelLength)
		}

		// Invariant 3 (terminator isolation): every leaf's edge label
		// ends with the terminator.
		if node.isLeaf() {
			owner, err := tr.strings.Get(node.label.owner)
			require.NoError(t, err)
			require.Equal(t, byte(Terminator), owner[node.label.end-1])
		}
	}
}

// checkSuffixCompleteness verifies invariant 2: for every (k, i), exactly
// one leaf carries that pair, and the root-to-leaf path spells
// strings[k][i:].
func checkSuffixCompleteness(t *testing.T, tr *Tree) {
	t.Helper()

	type key struct {
		id  StringID
		pos int
	}
	seen := make(map[key]NodeID)
	for _, leafID := range tr.leaves {
		leaf := tr.node(leafID)
		for _, ls := range leaf.leafStrings {
			k := key{ls.id, ls.pos}
			_, exists := seen[k]
			require.Falsef(t, exists, "pair %+v recorded at more than one leaf", k)
			seen[k] = leafID
		}
	}

	for id := 0; id < tr.strings.Len(); id++ {
		full, err := tr.strings.Get(StringID(id))
		require.NoError(t, err)
		for i := 0; i < len(full); i++ {
			leafID, ok := seen[key{StringID(id), i}]
			require.Truef(t, ok, "no leaf recorded for (%d, %d)", id, i)
			require.Equal(t, pathSpelling(t, tr, leafID), full[i:])
		}
	}
}

// pathSpelling concatenates edge labels from the root down to nodeID.
func pathSpelling(t *testing.T, tr *Tree, nodeID NodeID) string {
	t.Helper()
	var segments []string
	for id := nodeID; id != tr.root; {
		node := tr.node(id)
		owner, err := tr.strings.Get(node.label.owner)
		require.NoError(t, err)
		segments = append([]string{owner[node.label.start:node.label.end]}, segments...)
		id = node.parent
	}
	out := ""
	for _, s := range segments {
		out += s
	}
	return out
}
