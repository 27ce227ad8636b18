package triface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riskaware-ltd/open-eaggr-go/facecoord"
	"github.com/riskaware-ltd/open-eaggr-go/triface"
)

func TestClassifyInterior(t *testing.T) {
	loc := triface.Classify(facecoord.CartesianPoint{X: 0, Y: 0}, 1e-6)
	assert.Equal(t, triface.Interior, loc)
}

func TestClassifyVertex(t *testing.T) {
	v0, _, _ := triface.Triangle()
	loc := triface.Classify(facecoord.CartesianPoint{X: v0.X, Y: v0.Y}, 1e-6)
	assert.Equal(t, triface.Vertex, loc)
}

func TestClassifyEdge(t *testing.T) {
	v0, v1, _ := triface.Triangle()
	mid := facecoord.CartesianPoint{X: (v0.X + v1.X) / 2, Y: (v0.Y + v1.Y) / 2}
	loc := triface.Classify(mid, 1e-6)
	assert.Equal(t, triface.Edge, loc)
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "interior", triface.Interior.String())
	assert.Equal(t, "edge", triface.Edge.String())
	assert.Equal(t, "vertex", triface.Vertex.String())
}
