package suffixtree

import "math"

// matchFrame is one entry of the DFS worklist used by
// FindSuffixMatchesForPrefixWithMismatches: the node reached so far, how
// far into the prefix the walk has consumed, and how many mismatches
// have accumulated along the way.
type matchFrame struct {
	node       NodeID
	prefixPos  int
	mismatches int
}

// FindSuffixMatchesForPrefixWithMismatches implements §4.5: identical to
// FindSuffixMatchesForPrefix, but a candidate match of length L is
// acceptable if it contains at most floor(len(prefix) * maxMismatchRate)
// mismatching characters and the local rate mismatches/L does not exceed
// maxMismatchRate. maxMismatchRate must be in [0, 1].
func (t *Tree) FindSuffixMatchesForPrefixWithMismatches(prefixID StringID, maxMismatchRate float64) (map[StringID]int, error) {
	if maxMismatchRate < 0 || maxMismatchRate > 1 {
		return nil, ErrInvalidQueryArgument
	}
	terminatedPrefix, err := t.strings.Get(prefixID)
	if err != nil {
		return nil, err
	}
	prefixLen := len(terminatedPrefix) - 1
	maxMismatches := int(math.Floor(float64(prefixLen) * maxMismatchRate))

	best := make(map[StringID]int)
	worklist := []matchFrame{{node: t.root, prefixPos: 0, mismatches: 0}}

	for len(worklist) > 0 {
		n := len(worklist) - 1
		frame := worklist[n]
		worklist = worklist[:n]

		for _, childID := range t.node(frame.node).children {
			child := t.node(childID)
			owner, err := t.strings.Get(child.label.owner)
			if err != nil {
				return nil, err
			}

			prefixPos := frame.prefixPos
			mismatches := frame.mismatches
			aborted := false
			reachedTerminator := false

			pos := child.label.start
			for ; pos < child.label.end; pos++ {
				ch := owner[pos]
				if ch == Terminator {
					reachedTerminator = true
					break
				}
				if prefixPos >= prefixLen {
					aborted = true
					break
				}
				if terminatedPrefix[prefixPos] != ch {
					mismatches++
					if mismatches > maxMismatches {
						aborted = true
						break
					}
				}
				prefixPos++
			}

			if aborted {
				continue
			}

			if reachedTerminator {
				length := child.pathLabelLength - 1
				if length > 0 && mismatches <= maxMismatches &&
					float64(mismatches)/float64(length) <= maxMismatchRate {
					for _, ls := range child.leafStrings {
						if length > best[ls.id] {
							best[ls.id] = length
						}
					}
				}
				continue
			}

			worklist = append(worklist, matchFrame{node: childID, prefixPos: prefixPos, mismatches: mismatches})
		}
	}

	delete(best, prefixID)

	result := make(map[StringID]int, t.strings.Len())
	for sid := 0; sid < t.strings.Len(); sid++ {
		id := StringID(sid)
		if id == prefixID {
			continue
		}
		result[id] = best[id]
	}
	return result, nil
}
