// Package mesh implements an in-memory planar mosaic design: points,
// line segments joining points by position, and colored shapes built from
// segment cycles. Segments and shapes hold positions into their sibling
// store rather than direct references, so the stores serialize
// independently as long as reconstruction order is preserved (points before
// segments before shapes).
package mesh

// Mesh groups the three sibling stores that make up one mosaic design.
type Mesh struct {
	Points   *PointStore
	Segments *SegmentStore
	Shapes   *ShapeStore
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		Points:   NewPointStore(),
		Segments: NewSegmentStore(),
		Shapes:   NewShapeStore(),
	}
}

// Demo builds the sample mosaic design: seven points, seven segments, a red
// triangle and a blue quadrilateral.
func Demo() (*Mesh, error) {
	m := NewMesh()
	m.Points.Add(10, 20)
	m.Points.Add(5, 2)
	m.Points.Add(15, 60)
	m.Points.Add(8, 12)
	m.Points.Add(20, 20)
	m.Points.Add(27, 2)
	m.Points.Add(5, 50)

	m.Segments.Add(0, 1)
	m.Segments.Add(1, 2)
	m.Segments.Add(2, 0)
	m.Segments.Add(3, 4)
	m.Segments.Add(4, 5)
	m.Segments.Add(5, 6)
	m.Segments.Add(6, 3)

	if err := m.Shapes.AddTriangle(0, 1, 2, m.Segments, Color{R: 255}); err != nil {
		return nil, err
	}
	if err := m.Shapes.AddQuadrilateral(3, 4, 5, 6, m.Segments, Color{B: 255}); err != nil {
		return nil, err
	}
	return m, nil
}
