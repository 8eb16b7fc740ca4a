package mesh

import (
	"fmt"

	"github.com/jbeda/geom"
)

// ShapeKind tags the two shape variants held by a ShapeStore.
type ShapeKind int

const (
	Triangle ShapeKind = iota
	Quadrilateral
)

// String returns the variant name.
func (k ShapeKind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Quadrilateral:
		return "quadrilateral"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Color is an 8-bit RGB fill color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Shape is a cycle of segment positions plus a fill color. The cycle is
// validated once, when the shape is added; later mutation of the referenced
// segments or points is not detected, so a shape can go stale the same way a
// segment can (see SegmentStore.Resolve).
type Shape struct {
	Segments []int
	Color    Color
}

// ShapeStore holds triangles and quadrilaterals in two ordered sequences,
// addressed by variant and position.
type ShapeStore struct {
	triangles      []Shape
	quadrilaterals []Shape
}

// NewShapeStore creates an empty shape store.
func NewShapeStore() *ShapeStore {
	return &ShapeStore{}
}

// AddTriangle appends a triangle built from three segments, looked up by
// position in the supplied segment store. The segments, taken as directed
// edges in the order given, must close into a cycle.
func (s *ShapeStore) AddTriangle(s1, s2, s3 int, segments *SegmentStore, color Color) error {
	return s.add(Triangle, []int{s1, s2, s3}, segments, color)
}

// AddQuadrilateral appends a quadrilateral built from four segments, with
// the same closure requirement as AddTriangle.
func (s *ShapeStore) AddQuadrilateral(s1, s2, s3, s4 int, segments *SegmentStore, color Color) error {
	return s.add(Quadrilateral, []int{s1, s2, s3, s4}, segments, color)
}

func (s *ShapeStore) add(kind ShapeKind, indices []int, segments *SegmentStore, color Color) error {
	if err := validateClosure(indices, segments); err != nil {
		return err
	}
	shape := Shape{Segments: indices, Color: color}
	switch kind {
	case Triangle:
		s.triangles = append(s.triangles, shape)
	case Quadrilateral:
		s.quadrilaterals = append(s.quadrilaterals, shape)
	}
	return nil
}

// validateClosure checks that the segments at the given positions form a
// closed directed cycle: each segment must end at the point the next one
// starts from, wrapping around. Adjacency is positional; no reordering is
// attempted. The check is topological only, on point positions, not on
// coordinates.
func validateClosure(indices []int, segments *SegmentStore) error {
	resolved := make([]Segment, len(indices))
	for i, index := range indices {
		segment, err := segments.At(index)
		if err != nil {
			return fmt.Errorf("%w: shape references segment %d of %d", ErrInvalidReference, index, segments.Len())
		}
		resolved[i] = segment
	}
	for i, segment := range resolved {
		next := resolved[(i+1)%len(resolved)]
		if segment.End != next.Start {
			return fmt.Errorf("%w: segment %d ends at point %d, next segment starts at point %d", ErrUnclosedShape, indices[i], segment.End, next.Start)
		}
	}
	return nil
}

// RemoveAt deletes the shape at the given position within the chosen
// variant, shifting later shapes of that variant down by one.
func (s *ShapeStore) RemoveAt(kind ShapeKind, index int) error {
	shapes := s.variant(kind)
	if index < 0 || index >= len(*shapes) {
		return fmt.Errorf("%w: %v %d of %d", ErrIndexOutOfRange, kind, index, len(*shapes))
	}
	*shapes = append((*shapes)[:index], (*shapes)[index+1:]...)
	return nil
}

// Clear removes all shapes of both variants.
func (s *ShapeStore) Clear() {
	s.triangles = nil
	s.quadrilaterals = nil
}

// Len returns the number of shapes of the given variant.
func (s *ShapeStore) Len(kind ShapeKind) int {
	return len(*s.variant(kind))
}

// At returns the shape at the given position within the chosen variant.
func (s *ShapeStore) At(kind ShapeKind, index int) (Shape, error) {
	shapes := *s.variant(kind)
	if index < 0 || index >= len(shapes) {
		return Shape{}, fmt.Errorf("%w: %v %d of %d", ErrIndexOutOfRange, kind, index, len(shapes))
	}
	return shapes[index], nil
}

// Triangles returns the triangle sequence in insertion order.
// The slice must not be mutated by the caller.
func (s *ShapeStore) Triangles() []Shape {
	return s.triangles
}

// Quadrilaterals returns the quadrilateral sequence in insertion order.
// The slice must not be mutated by the caller.
func (s *ShapeStore) Quadrilaterals() []Shape {
	return s.quadrilaterals
}

// Vertices resolves the corner points of the shape at the given position,
// one corner per segment (each segment's start point), in cycle order.
// A shape gone stale through point or segment removal yields
// ErrInvalidReference.
func (s *ShapeStore) Vertices(kind ShapeKind, index int, segments *SegmentStore, points *PointStore) ([]geom.Coord, error) {
	shape, err := s.At(kind, index)
	if err != nil {
		return nil, err
	}
	vertices := make([]geom.Coord, 0, len(shape.Segments))
	for _, segmentIndex := range shape.Segments {
		if segmentIndex < 0 || segmentIndex >= segments.Len() {
			return nil, fmt.Errorf("%w: %v %d references segment %d of %d", ErrInvalidReference, kind, index, segmentIndex, segments.Len())
		}
		start, _, err := segments.Resolve(points, segmentIndex)
		if err != nil {
			return nil, fmt.Errorf("%v %d: %w", kind, index, err)
		}
		vertices = append(vertices, start)
	}
	return vertices, nil
}

func (s *ShapeStore) variant(kind ShapeKind) *[]Shape {
	if kind == Quadrilateral {
		return &s.quadrilaterals
	}
	return &s.triangles
}
