//go:build !suffixtreedebug

package suffixtree

// assertNodeInvariants is a no-op in release builds. Build with the
// suffixtreedebug tag to enable the checks.
func assertNodeInvariants(t *Tree, parentID NodeID) {}
