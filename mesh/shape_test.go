package mesh

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentStoreOf(pairs ...[2]int) *SegmentStore {
	store := NewSegmentStore()
	for _, pair := range pairs {
		store.Add(pair[0], pair[1])
	}
	return store
}

func TestAddTriangleClosure(t *testing.T) {
	tests := []struct {
		description string
		segments    *SegmentStore
		expectErr   error
	}{
		{
			description: "closed cycle passes",
			segments:    segmentStoreOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}),
		},
		{
			description: "last segment ends away from the start",
			segments:    segmentStoreOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}),
			expectErr:   ErrUnclosedShape,
		},
		{
			description: "mid-cycle gap",
			segments:    segmentStoreOf([2]int{0, 1}, [2]int{2, 3}, [2]int{3, 0}),
			expectErr:   ErrUnclosedShape,
		},
	}
	for _, tc := range tests {
		store := NewShapeStore()
		err := store.AddTriangle(0, 1, 2, tc.segments, Color{R: 255})
		if tc.expectErr != nil {
			assert.ErrorIs(t, err, tc.expectErr, tc.description)
			assert.Equal(t, 0, store.Len(Triangle), tc.description)
			continue
		}
		require.NoError(t, err, tc.description)
		assert.Equal(t, 1, store.Len(Triangle), tc.description)
	}
}

func TestAddQuadrilateralClosure(t *testing.T) {
	segments := segmentStoreOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	store := NewShapeStore()
	require.NoError(t, store.AddQuadrilateral(0, 1, 2, 3, segments, Color{B: 255}))

	// adjacency is positional; the same segments in a different order do not close
	err := store.AddQuadrilateral(0, 2, 1, 3, segments, Color{B: 255})
	assert.ErrorIs(t, err, ErrUnclosedShape)
	assert.Equal(t, 1, store.Len(Quadrilateral))
}

func TestAddShapeInvalidSegmentReference(t *testing.T) {
	segments := segmentStoreOf([2]int{0, 1}, [2]int{1, 2})
	store := NewShapeStore()
	err := store.AddTriangle(0, 1, 7, segments, Color{})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestShapeStoreRemoveAt(t *testing.T) {
	segments := segmentStoreOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	store := NewShapeStore()
	require.NoError(t, store.AddTriangle(0, 1, 2, segments, Color{R: 1}))
	require.NoError(t, store.AddTriangle(0, 1, 2, segments, Color{R: 2}))
	require.NoError(t, store.AddTriangle(0, 1, 2, segments, Color{R: 3}))

	require.NoError(t, store.RemoveAt(Triangle, 1))
	assert.Equal(t, 2, store.Len(Triangle))
	second, err := store.At(Triangle, 1)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 3}, second.Color, "later shapes shift down")

	assert.ErrorIs(t, store.RemoveAt(Triangle, 2), ErrIndexOutOfRange)
	assert.ErrorIs(t, store.RemoveAt(Quadrilateral, 0), ErrIndexOutOfRange)
}

func TestShapeStoreVertices(t *testing.T) {
	points := NewPointStore()
	points.Add(0, 0)
	points.Add(4, 0)
	points.Add(2, 3)
	segments := segmentStoreOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	store := NewShapeStore()
	require.NoError(t, store.AddTriangle(0, 1, 2, segments, Color{G: 255}))

	vertices, err := store.Vertices(Triangle, 0, segments, points)
	require.NoError(t, err)
	assert.Equal(t, []geom.Coord{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}, vertices)
}

func TestShapeStoreVerticesStale(t *testing.T) {
	points := NewPointStore()
	points.Add(0, 0)
	points.Add(4, 0)
	points.Add(2, 3)
	segments := segmentStoreOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	store := NewShapeStore()
	require.NoError(t, store.AddTriangle(0, 1, 2, segments, Color{}))

	// shapes are validated at add time only; a later segment removal leaves
	// the shape in place but unresolvable
	require.NoError(t, segments.RemoveAt(2))
	assert.Equal(t, 1, store.Len(Triangle))
	_, err := store.Vertices(Triangle, 0, segments, points)
	assert.ErrorIs(t, err, ErrInvalidReference)
}
