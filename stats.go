package suffixtree

import "github.com/samber/lo"

// RemainingLengthHistogram buckets sequenceLength-matchLength (the
// leftover read length after an adapter or barcode match of the given
// length has been trimmed) by frequency, for every entry in matches.
// Negative remainders are omitted, mirroring the clipping that
// np.histogram's explicit bin edges performed in the original
// histogram.py/task3.py plotting scripts this replaces the numeric core
// of. The plotting itself remains an external concern.
func RemainingLengthHistogram(sequenceLength int, matches map[StringID]int) map[int]int {
	remainders := make([]int, 0, len(matches))
	for _, matchLength := range matches {
		remainder := sequenceLength - matchLength
		if remainder < 0 {
			continue
		}
		remainders = append(remainders, remainder)
	}
	return lo.CountValues(remainders)
}

// MostFrequentSequencePerBarcode returns, for every barcode bucket, the
// modal trimmed sequence within it. Grounded in task4.py's final,
// unfinished comment ("most frequently occurring sequence within each
// sample"); left undone there, implemented here as a concrete operation.
func MostFrequentSequencePerBarcode(samplesPerBarcode map[string][]string) map[string]string {
	result := make(map[string]string, len(samplesPerBarcode))
	for barcode, samples := range samplesPerBarcode {
		if len(samples) == 0 {
			continue
		}
		counts := lo.CountValues(samples)
		best, bestN := samples[0], -1
		for _, sample := range samples {
			if n := counts[sample]; n > bestN {
				best, bestN = sample, n
			}
		}
		result[barcode] = best
	}
	return result
}
