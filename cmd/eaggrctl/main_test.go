package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	require.NoError(t, err)
	return out.String()
}

func TestPointToCellThenCellToPoint(t *testing.T) {
	out := run(t, "point-to-cell", "51.5", "-0.1")
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	back := run(t, "cell-to-point", id)
	assert.Contains(t, back, "accuracy")
}

func TestChildrenAndParentsRoundTripThroughCLI(t *testing.T) {
	children := run(t, "children", "0012")
	ids := strings.Fields(children)
	require.Len(t, ids, 4)

	parents := run(t, "--grid", "isea4t", "parents", ids[0])
	assert.Contains(t, strings.TrimSpace(parents), "0012")
}

func TestSiblingsAndVerticesProduceOutput(t *testing.T) {
	siblings := run(t, "siblings", "0012")
	assert.NotEmpty(t, strings.TrimSpace(siblings))

	verts := run(t, "vertices", "00")
	lines := strings.Split(strings.TrimSpace(verts), "\n")
	assert.Len(t, lines, 3)
}

func TestUnrecognizedGridIsRejected(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--grid", "bogus", "vertices", "00"})
	err := root.Execute()
	assert.Error(t, err)
}
