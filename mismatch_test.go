package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTree_FindSuffixMatchesForPrefixWithMismatches_ToleratesMismatches(t *testing.T) {
	tr := New(WithTrackTerminalEdges())
	prefixID, err := tr.AddString("TGGAATTCTCGG")
	require.NoError(t, err)
	readID, err := tr.AddString("XXXTGAAATT")
	require.NoError(t, err)

	matches, err := tr.FindSuffixMatchesForPrefixWithMismatches(prefixID, 0.25)
	require.NoError(t, err)
	// "TGAAATT" (suffix at position 3) aligns against "TGGAATT" with a
	// single mismatch at index 2 (A vs G): 1/7 <= 0.25. No longer
	// candidate suffix of the read stays within budget.
	require.Equal(t, 7, matches[readID])
}

func TestTree_FindSuffixMatchesForPrefixWithMismatches_ZeroRateMatchesExact(t *testing.T) {
	tr := New(WithTrackTerminalEdges())
	prefixID, err := tr.AddString("TGGAATTCTCGG")
	require.NoError(t, err)

	var readIDs []StringID
	for _, s := range []string{"XXXTGGAA", "YYYYTGG", "ZZZZZ"} {
		id, err := tr.AddString(s)
		require.NoError(t, err)
		readIDs = append(readIDs, id)
	}

	exact, err := tr.FindSuffixMatchesForPrefix(prefixID)
	require.NoError(t, err)
	tolerant, err := tr.FindSuffixMatchesForPrefixWithMismatches(prefixID, 0)
	require.NoError(t, err)

	for _, id := range readIDs {
		require.Equal(t, exact[id], tolerant[id])
	}
}

func TestTree_FindSuffixMatchesForPrefixWithMismatches_RateOneAdmitsFullPrefixLength(t *testing.T) {
	tr := New(WithTrackTerminalEdges())
	prefixID, err := tr.AddString("TGGAATTCTCGG")
	require.NoError(t, err)
	readID, err := tr.AddString("TGGAATTCTCGG")
	require.NoError(t, err)

	matches, err := tr.FindSuffixMatchesForPrefixWithMismatches(prefixID, 1)
	require.NoError(t, err)
	require.Equal(t, len("TGGAATTCTCGG"), matches[readID])
}

func TestTree_FindSuffixMatchesForPrefixWithMismatches_RejectsOutOfRangeRate(t *testing.T) {
	tr := New()
	prefixID, err := tr.AddString("abc")
	require.NoError(t, err)

	_, err = tr.FindSuffixMatchesForPrefixWithMismatches(prefixID, 1.5)
	require.ErrorIs(t, err, ErrInvalidQueryArgument)

	_, err = tr.FindSuffixMatchesForPrefixWithMismatches(prefixID, -0.1)
	require.ErrorIs(t, err, ErrInvalidQueryArgument)
}
