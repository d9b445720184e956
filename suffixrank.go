package suffixtree

import (
	"sort"

	"github.com/samber/lo"
)

// SuffixRank is one entry of FindMostCommonSuffixes: a candidate common
// suffix, how many strings share it, and its length.
type SuffixRank struct {
	Count  int
	Length int
	Leaf   NodeID
	Suffix string
}

// FindMostCommonSuffixes implements §4.6: for every leaf (excluding the
// trivial length-1 terminator leaf directly under the root, if present),
// count is the size of the union of terminal-edge ids across every
// non-root ancestor plus the leaf's own string ids, and length is the
// leaf's path label length minus the terminator. The result is sorted by
// count descending, then length descending; its head is the most likely
// adapter sequence.
func (t *Tree) FindMostCommonSuffixes() ([]SuffixRank, error) {
	if !t.trackTerminalEdges {
		t.log.Debug("FindMostCommonSuffixes called without terminal-edge tracking enabled")
	}

	var ranks []SuffixRank
	t.rankSuffixes(t.root, nil, &ranks)

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Length > ranks[j].Length
	})
	return ranks, nil
}

// rankSuffixes walks the tree depth-first, threading accumulated (copied
// on each branch) terminal-edge ids from ancestors down to every leaf.
func (t *Tree) rankSuffixes(nodeID NodeID, ancestorIDs []StringID, out *[]SuffixRank) {
	node := t.node(nodeID)

	if node.isLeaf() {
		if node.parent == t.root && node.label.length() == 1 {
			return
		}
		ownIDs := make([]StringID, 0, len(node.leafStrings))
		for _, ls := range node.leafStrings {
			ownIDs = append(ownIDs, ls.id)
		}
		union := lo.Uniq(append(append([]StringID{}, ancestorIDs...), ownIDs...))

		length := node.pathLabelLength - 1
		owner, err := t.strings.Get(node.label.owner)
		suffix := ""
		if err == nil && length >= 0 && node.pathLabelLength <= len(owner) {
			suffix = owner[len(owner)-node.pathLabelLength : len(owner)-1]
		}

		*out = append(*out, SuffixRank{
			Count:  len(union),
			Length: length,
			Leaf:   nodeID,
			Suffix: suffix,
		})
		return
	}

	extended := ancestorIDs
	if nodeID != t.root && len(node.terminalEdgeIDs) > 0 {
		ids := lo.Keys(node.terminalEdgeIDs)
		extended = lo.Union(ancestorIDs, ids)
	}

	for _, childID := range node.children {
		t.rankSuffixes(childID, extended, out)
	}
}
