package suffixtree

// addSuffixes inserts every suffix of the string stored under id into the
// tree, one at a time, following the naive O(n^2) construction of §4.3.
// A linear-time (Ukkonen) builder is documented in the original as future
// work and is not provided here; the naive builder is the one correctness
// requirement this spec imposes on construction.
func (t *Tree) addSuffixes(id StringID) {
	full, err := t.strings.Get(id)
	if err != nil {
		// id was just assigned by Append; this cannot fail.
		panic(err)
	}
	for i := range full {
		t.insertSuffix(id, full, i)
	}
}

// insertSuffix inserts the suffix full[i:] into the tree, walking from
// the root per the algorithm in §4.3.
func (t *Tree) insertSuffix(id StringID, full string, i int) {
	currentID := t.root
	suffixPos := 0

	for {
		current := t.node(currentID)
		if len(current.children) == 0 {
			// No children to examine: either the root on the very first
			// insertion, or a leaf reached by a full edge match that
			// exhausted the new suffix. Either way, do not index into
			// full at i+suffixPos, which may be out of range here.
			t.attachNewLeaf(currentID, id, full, i, suffixPos)
			return
		}

		childIdx, childID := t.findChild(currentID, full[i+suffixPos])
		if childID == nilNode {
			t.attachNewLeaf(currentID, id, full, i, suffixPos)
			return
		}

		child := t.node(childID)
		edgeOwner, err := t.strings.Get(child.label.owner)
		if err != nil {
			panic(err)
		}

		matchedWholeEdge := true
		pos := child.label.start + 1
		sp := suffixPos + 1
		for ; pos < child.label.end; pos, sp = pos+1, sp+1 {
			if i+sp >= len(full) {
				// The inserted suffix is exhausted inside this edge: a
				// later-added string duplicates an earlier suffix up to
				// the shared prefix. Treat the match as complete at this
				// point rather than splitting (cf. §4.3 step 4, final
				// bullet).
				break
			}
			if edgeOwner[pos] != full[i+sp] {
				matchedWholeEdge = false
				break
			}
		}

		if !matchedWholeEdge {
			splitID := t.splitEdge(currentID, childIdx, pos-child.label.start)
			t.attachNewLeaf(splitID, id, full, i, sp)

			remaining := t.node(t.node(splitID).children[0])
			if remaining.label.length() == 1 && edgeOwner[remaining.label.start] == Terminator {
				t.recordTerminalEdge(splitID, remaining)
			}
			return
		}

		// Whole edge matched; descend and keep walking from the child.
		currentID = childID
		suffixPos = sp
	}
}

// attachNewLeaf attaches a brand-new leaf under parentID for the suffix
// full[i+suffixPos:], or extends an already-present leaf's leaf-strings
// when the walk has reached a pre-existing leaf with nothing left to
// match (identical strings inserted more than once).
func (t *Tree) attachNewLeaf(parentID NodeID, id StringID, full string, i, suffixPos int) {
	parent := t.node(parentID)
	if parent.isLeaf() && len(parent.children) == 0 {
		// currentID is itself a previously-created leaf reached by a full
		// edge match that exhausted the new suffix: extend it instead of
		// creating a new node, per §4.3 step 4's duplicate-string case.
		t.addLeafSuffix(parentID, id, i)
		if t.trackTerminalEdges && parent.label.length() == 1 {
			t.node(parent.parent).addTerminalEdgeID(id)
		}
		return
	}

	leafID := t.allocNode(&Node{
		label: edgeLabel{owner: id, start: i + suffixPos, end: len(full)},
	})
	t.addChild(parentID, leafID)
	t.addLeafSuffix(leafID, id, i)
	t.leaves = append(t.leaves, leafID)

	if t.trackTerminalEdges && t.node(leafID).label.length() == 1 {
		t.node(parentID).addTerminalEdgeID(id)
	}
}

// recordTerminalEdge marks splitNode's terminal-edge-id set with every
// string id that the newly-exposed length-1 terminator edge under it
// contributes. Invariant 1 plus the terminator's position (always last)
// mean an edge whose sole character is the terminator always leads to a
// leaf, so remaining's leaf-strings are the full contributor set.
func (t *Tree) recordTerminalEdge(splitID NodeID, remaining *Node) {
	if !t.trackTerminalEdges {
		return
	}
	split := t.node(splitID)
	if remaining.isLeaf() {
		for _, ls := range remaining.leafStrings {
			split.addTerminalEdgeID(ls.id)
		}
		return
	}
	split.addTerminalEdgeID(remaining.label.owner)
}

// findChild returns the index and handle of nodeID's child whose edge
// label begins with ch, or (-1, nilNode) if none exists. Invariant 1
// guarantees at most one such child.
func (t *Tree) findChild(nodeID NodeID, ch byte) (int, NodeID) {
	node := t.node(nodeID)
	for idx, childID := range node.children {
		child := t.node(childID)
		owner, err := t.strings.Get(child.label.owner)
		if err != nil {
			panic(err)
		}
		if owner[child.label.start] == ch {
			return idx, childID
		}
	}
	return -1, nilNode
}
