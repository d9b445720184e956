package suffixtree

import "sort"

// SequenceCount is one entry of CountUniqueSequences: a whole input
// string and how many times it was inserted.
type SequenceCount struct {
	Count  int
	String string
}

// CountUniqueSequences implements §4.7: for every leaf whose path from
// the root spells out an entire input string (the leaf records some
// string's suffix starting at position 0), emits the number of times
// that string was inserted and the string itself (terminator stripped).
// Sorted by count descending.
func (t *Tree) CountUniqueSequences() ([]SequenceCount, error) {
	var counts []SequenceCount
	for _, leafID := range t.leaves {
		leaf := t.node(leafID)
		inserted := 0
		for _, ls := range leaf.leafStrings {
			if ls.pos == 0 {
				inserted++
			}
		}
		if inserted == 0 {
			continue
		}
		owner, err := t.strings.Get(leaf.label.owner)
		if err != nil {
			return nil, err
		}
		counts = append(counts, SequenceCount{
			Count:  inserted,
			String: owner[len(owner)-leaf.pathLabelLength : len(owner)-1],
		})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}
