package mesh

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Segment joins two points by their positions in a PointStore. Start and End
// may coincide. The referenced positions are validated when a segment enters
// through the codec, not when the point store later changes.
type Segment struct {
	Start int
	End   int
}

// SegmentStore is an ordered collection of segments addressed by position.
type SegmentStore struct {
	segments []Segment
}

// NewSegmentStore creates an empty segment store.
func NewSegmentStore() *SegmentStore {
	return &SegmentStore{}
}

// Add appends a segment from the point at start to the point at end.
func (s *SegmentStore) Add(start, end int) {
	s.segments = append(s.segments, Segment{Start: start, End: end})
}

// Remove deletes the first segment with the given start and end positions.
// The store is unchanged when no segment matches.
func (s *SegmentStore) Remove(start, end int) {
	target := Segment{Start: start, End: end}
	for i, segment := range s.segments {
		if segment == target {
			s.segments = append(s.segments[:i], s.segments[i+1:]...)
			return
		}
	}
}

// RemoveAt deletes the segment at the given position, shifting later
// segments down by one.
func (s *SegmentStore) RemoveAt(index int) error {
	if index < 0 || index >= len(s.segments) {
		return fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, index, len(s.segments))
	}
	s.segments = append(s.segments[:index], s.segments[index+1:]...)
	return nil
}

// Clear removes all segments.
func (s *SegmentStore) Clear() {
	s.segments = nil
}

// Len returns the number of segments.
func (s *SegmentStore) Len() int {
	return len(s.segments)
}

// At returns the segment at the given position.
func (s *SegmentStore) At(index int) (Segment, error) {
	if index < 0 || index >= len(s.segments) {
		return Segment{}, fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, index, len(s.segments))
	}
	return s.segments[index], nil
}

// Segments returns the underlying segment sequence in insertion order.
// The slice must not be mutated by the caller.
func (s *SegmentStore) Segments() []Segment {
	return s.segments
}

// Resolve returns the segment at the given position as a pair of point
// coordinates. A segment whose endpoint no longer exists in the point store
// (the point was removed after the segment was added) yields
// ErrInvalidReference.
func (s *SegmentStore) Resolve(points *PointStore, index int) (geom.Coord, geom.Coord, error) {
	segment, err := s.At(index)
	if err != nil {
		return geom.Coord{}, geom.Coord{}, err
	}
	start, err := points.At(segment.Start)
	if err != nil {
		return geom.Coord{}, geom.Coord{}, fmt.Errorf("%w: segment %d starts at point %d of %d", ErrInvalidReference, index, segment.Start, points.Len())
	}
	end, err := points.At(segment.End)
	if err != nil {
		return geom.Coord{}, geom.Coord{}, fmt.Errorf("%w: segment %d ends at point %d of %d", ErrInvalidReference, index, segment.End, points.Len())
	}
	return start, end, nil
}
