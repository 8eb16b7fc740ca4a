package mesh

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	m, err := Demo()
	require.NoError(t, err)
	assert.Equal(t, 7, m.Points.Len())
	assert.Equal(t, 7, m.Segments.Len())
	assert.Equal(t, 1, m.Shapes.Len(Triangle))
	assert.Equal(t, 1, m.Shapes.Len(Quadrilateral))

	box, err := m.Points.BoundingRectangle()
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{Min: geom.Coord{X: 5, Y: 2}, Max: geom.Coord{X: 27, Y: 60}}, box)
}
