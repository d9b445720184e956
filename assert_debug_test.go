//go:build suffixtreedebug

package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertNodeInvariants_PanicsOnPathLengthCorruption(t *testing.T) {
	tr := New()
	_, err := tr.AddString("abc")
	require.NoError(t, err)

	root := tr.node(tr.root)
	child := tr.node(root.children[0])
	child.pathLabelLength++

	require.Panics(t, func() {
		assertNodeInvariants(tr, tr.root)
	})
}

func TestAssertNodeInvariants_PanicsOnDuplicateFirstCharacter(t *testing.T) {
	tr := New()
	_, err := tr.AddString("abc")
	require.NoError(t, err)

	root := tr.node(tr.root)
	root.children = append(root.children, root.children[0])

	require.Panics(t, func() {
		assertNodeInvariants(tr, tr.root)
	})
}
