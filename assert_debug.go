//go:build suffixtreedebug

package suffixtree

import "fmt"

// assertNodeInvariants checks invariant 1 (unique edge-first-character
// among parentID's children) and invariant 4 (path-length consistency for
// each child) after a mutation. Construction-time invariant violations are
// programmer bugs, per §7; this build tag exists so the cost of checking
// them is paid only in debug builds.
func assertNodeInvariants(t *Tree, parentID NodeID) {
	parent := t.node(parentID)

	seen := make(map[byte]NodeID, len(parent.children))
	for _, childID := range parent.children {
		child := t.node(childID)
		owner, err := t.strings.Get(child.label.owner)
		if err != nil {
			panic(fmt.Sprintf("suffixtree: invariant check: %v", err))
		}
		ch := owner[child.label.start]
		if other, dup := seen[ch]; dup {
			panic(fmt.Sprintf("suffixtree: invariant 1 violated: children %d and %d of node %d both start with %q", other, childID, parentID, ch))
		}
		seen[ch] = childID

		if want := parent.pathLabelLength + child.label.length(); child.pathLabelLength != want {
			panic(fmt.Sprintf("suffixtree: invariant 4 violated: node %d pathLabelLength is %d, want %d", childID, child.pathLabelLength, want))
		}
	}
}
