package suffixtree

import "github.com/samber/lo"

// minBarcodeLeafLength is the minimum recorded path length considered a
// barcode candidate: 4 characters of barcode plus the terminator, per
// §4.8. A maximum barcode length of 8 is documented by the original but
// enforced only by input characteristics, not by a hard bound here.
const minBarcodeLeafLength = 5

// BarcodeResult is the output of FindBarcodes: the discovered barcode
// set and three maps partitioning the input strings by barcode.
type BarcodeResult struct {
	Barcodes          map[string]struct{}
	SamplesPerBarcode map[string][]string
	CountPerBarcode   map[string]int
	LengthsPerBarcode map[string][]int
}

// FindBarcodes implements §4.8. It assumes adapter trimming has already
// been performed on every inserted string. For each string id, the best
// candidate suffix is the one reached by the leaf with the most string
// ids attached to it (ties broken by suffix length); the globally most
// frequent such length is taken as the barcode length, and barcodes are
// the trailing substrings of that length.
func (t *Tree) FindBarcodes() (BarcodeResult, error) {
	n := t.strings.Len()
	bestCount := make([]int, n)
	bestSuffix := make([]string, n)

	for _, leafID := range t.leaves {
		leaf := t.node(leafID)
		if leaf.pathLabelLength < minBarcodeLeafLength {
			continue
		}
		owner, err := t.strings.Get(leaf.label.owner)
		if err != nil {
			return BarcodeResult{}, err
		}
		suffix := owner[len(owner)-leaf.pathLabelLength : len(owner)-1]
		count := len(leaf.leafStrings)

		for _, ls := range leaf.leafStrings {
			id := ls.id
			switch {
			case count > bestCount[id]:
				bestCount[id] = count
				bestSuffix[id] = suffix
			case count == bestCount[id] && len(suffix) > len(bestSuffix[id]):
				// Resolves the original's dead self-comparison
				// (len_suffixes[id] > len_suffixes[id]): compare against
				// the previously recorded best length for this id.
				bestSuffix[id] = suffix
			}
		}
	}

	lengths := make([]int, n)
	for id, s := range bestSuffix {
		lengths[id] = len(s)
	}
	barcodeLength := modeLength(lengths)

	result := BarcodeResult{
		Barcodes:          make(map[string]struct{}),
		SamplesPerBarcode: make(map[string][]string),
		CountPerBarcode:   make(map[string]int),
		LengthsPerBarcode: make(map[string][]int),
	}

	for id := 0; id < n; id++ {
		owner, err := t.strings.Get(StringID(id))
		if err != nil {
			return BarcodeResult{}, err
		}
		content := owner[:len(owner)-1]

		suffix := bestSuffix[id]
		barcode := suffix
		if len(suffix) > barcodeLength {
			barcode = suffix[len(suffix)-barcodeLength:]
		}

		result.Barcodes[barcode] = struct{}{}
		result.CountPerBarcode[barcode]++

		trimmed := content
		if len(content) >= len(barcode) {
			trimmed = content[:len(content)-len(barcode)]
		}
		result.SamplesPerBarcode[barcode] = append(result.SamplesPerBarcode[barcode], trimmed)
		result.LengthsPerBarcode[barcode] = append(result.LengthsPerBarcode[barcode], len(content))
	}

	return result, nil
}

// modeLength returns the most frequently occurring value in lengths,
// breaking ties toward the longer length (deterministic, unlike Python's
// hash-order-dependent max(set(x), key=x.count)).
func modeLength(lengths []int) int {
	counts := lo.CountValues(lengths)
	best, bestN := 0, -1
	for length, n := range counts {
		if n > bestN || (n == bestN && length > best) {
			best, bestN = length, n
		}
	}
	return best
}
