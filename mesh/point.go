package mesh

import (
	"fmt"

	"github.com/jbeda/geom"
)

// PointStore is an ordered collection of 2D points addressed by position.
// Positions are stable only until a removal shifts later entries down.
type PointStore struct {
	points []geom.Coord
	box    *geom.Rect // cached bounding rectangle, nil when stale
}

// NewPointStore creates an empty point store.
func NewPointStore() *PointStore {
	return &PointStore{}
}

// Add appends a point. Duplicates are permitted.
func (p *PointStore) Add(x, y float64) {
	p.points = append(p.points, geom.Coord{X: x, Y: y})
	p.box = nil
}

// Remove deletes the first point equal to (x, y) on both coordinates.
// The store is unchanged when no point matches.
func (p *PointStore) Remove(x, y float64) {
	target := geom.Coord{X: x, Y: y}
	for i, point := range p.points {
		if point == target {
			p.points = append(p.points[:i], p.points[i+1:]...)
			p.box = nil
			return
		}
	}
}

// RemoveAt deletes the point at the given position, shifting later points
// down by one. Segments referencing the removed or shifted points are not
// updated; see SegmentStore.Resolve.
func (p *PointStore) RemoveAt(index int) error {
	if index < 0 || index >= len(p.points) {
		return fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, index, len(p.points))
	}
	p.points = append(p.points[:index], p.points[index+1:]...)
	p.box = nil
	return nil
}

// Clear removes all points.
func (p *PointStore) Clear() {
	p.points = nil
	p.box = nil
}

// Len returns the number of points.
func (p *PointStore) Len() int {
	return len(p.points)
}

// At returns the point at the given position.
func (p *PointStore) At(index int) (geom.Coord, error) {
	if index < 0 || index >= len(p.points) {
		return geom.Coord{}, fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, index, len(p.points))
	}
	return p.points[index], nil
}

// Points returns the underlying point sequence in insertion order.
// The slice must not be mutated by the caller.
func (p *PointStore) Points() []geom.Coord {
	return p.points
}

// BoundingRectangle returns the smallest rectangle containing every point.
// The result is cached until the next mutation.
func (p *PointStore) BoundingRectangle() (geom.Rect, error) {
	if p.box != nil {
		return *p.box, nil
	}
	if len(p.points) == 0 {
		return geom.Rect{}, fmt.Errorf("%w: no points", ErrEmptyCollection)
	}
	box := geom.Rect{Min: p.points[0], Max: p.points[0]}
	for _, point := range p.points[1:] {
		box.ExpandToContainCoord(point)
	}
	p.box = &box
	return box, nil
}
