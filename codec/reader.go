package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/mosaic/mesh"
)

// Reader consumes mosaic sections from a caller-supplied stream. Sections
// must be read in the order they were written: points, then segments, then
// shapes. Each Read method replaces the target store's contents.
type Reader struct {
	scanner *lineScanner
}

// NewReader creates a reader on the supplied stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: newLineScanner(r)}
}

// ReadPoints reads the points section into the store.
func (r *Reader) ReadPoints(points *mesh.PointStore) error {
	if err := r.expectHeader(pointsHeader); err != nil {
		return err
	}
	points.Clear()
	return r.readRecords(pointsTrailer, func(line string) error {
		x, y, err := parsePointRecord(line)
		if err != nil {
			return err
		}
		points.Add(x, y)
		return nil
	})
}

// ReadSegments reads the line segments section into the store, validating
// every endpoint against the number of points already loaded.
func (r *Reader) ReadSegments(segments *mesh.SegmentStore, pointCount int) error {
	if err := r.expectHeader(segmentsHeader); err != nil {
		return err
	}
	segments.Clear()
	return r.readRecords(segmentsTrailer, func(line string) error {
		start, end, err := parseSegmentRecord(line)
		if err != nil {
			return err
		}
		if start < 0 || start >= pointCount || end < 0 || end >= pointCount {
			return fmt.Errorf("%w: segment (%d,%d) against %d points", mesh.ErrInvalidReference, start, end, pointCount)
		}
		segments.Add(start, end)
		return nil
	})
}

// shapeSection tracks which sub-section of the shapes format a data line
// belongs to. It changes only on the two literal sub-header lines.
type shapeSection int

const (
	sectionNone shapeSection = iota
	sectionTriangles
	sectionQuadrilaterals
)

// ReadShapes reads the shapes section into the store. Shapes enter through
// the store's validating add operations, so a record referencing a missing
// segment fails with ErrInvalidReference and one whose segments do not
// close fails with ErrUnclosedShape.
func (r *Reader) ReadShapes(shapes *mesh.ShapeStore, segments *mesh.SegmentStore) error {
	if err := r.expectHeader(shapesHeader); err != nil {
		return err
	}
	shapes.Clear()
	section := sectionNone
	return r.readRecords(shapesTrailer, func(line string) error {
		switch line {
		case trianglesHeader:
			section = sectionTriangles
			return nil
		case quadrilateralsHeader:
			section = sectionQuadrilaterals
			return nil
		}
		switch section {
		case sectionTriangles:
			indices, color, err := parseShapeRecord(line, 3)
			if err != nil {
				return err
			}
			return shapes.AddTriangle(indices[0], indices[1], indices[2], segments, color)
		case sectionQuadrilaterals:
			indices, color, err := parseShapeRecord(line, 4)
			if err != nil {
				return err
			}
			return shapes.AddQuadrilateral(indices[0], indices[1], indices[2], indices[3], segments, color)
		}
		return fmt.Errorf("%w: shape record %q before any sub-header", ErrMalformedRecord, line)
	})
}

func (r *Reader) expectHeader(header string) error {
	line, err := r.scanner.next()
	if err == io.EOF {
		return fmt.Errorf("%w: expected %q, got end of stream", ErrMalformedHeader, header)
	}
	if err != nil {
		return err
	}
	if line != header {
		return fmt.Errorf("%w: expected %q, got %q", ErrMalformedHeader, header, line)
	}
	return nil
}

// readRecords feeds lines to record until the trailer line is seen. Running
// out of stream first is a format violation: a section without its trailer
// is truncated.
func (r *Reader) readRecords(trailer string, record func(line string) error) error {
	for {
		line, err := r.scanner.next()
		if err == io.EOF {
			return fmt.Errorf("%w: expected %q before end of stream", ErrMalformedTrailer, trailer)
		}
		if err != nil {
			return err
		}
		if line == trailer {
			return nil
		}
		if err := record(line); err != nil {
			return err
		}
	}
}

func parsePointRecord(line string) (float64, float64, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: point %q", ErrMalformedRecord, line)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: point %q: %v", ErrMalformedRecord, line, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: point %q: %v", ErrMalformedRecord, line, err)
	}
	return x, y, nil
}

func parseSegmentRecord(line string) (int, int, error) {
	fields, err := parseInts(line, 2)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: segment %q", ErrMalformedRecord, line)
	}
	return fields[0], fields[1], nil
}

// parseShapeRecord parses cycleLen segment positions followed by three RGB
// channel values.
func parseShapeRecord(line string, cycleLen int) ([]int, mesh.Color, error) {
	fields, err := parseInts(line, cycleLen+3)
	if err != nil {
		return nil, mesh.Color{}, fmt.Errorf("%w: shape %q", ErrMalformedRecord, line)
	}
	channels := fields[cycleLen:]
	for _, channel := range channels {
		if channel < 0 || channel > 255 {
			return nil, mesh.Color{}, fmt.Errorf("%w: shape %q: color channel %d outside 0..255", ErrMalformedRecord, line, channel)
		}
	}
	color := mesh.Color{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2])}
	return fields[:cycleLen], color, nil
}

func parseInts(line string, count int) ([]int, error) {
	fields := strings.Split(line, ",")
	if len(fields) != count {
		return nil, fmt.Errorf("expected %d fields, got %d", count, len(fields))
	}
	values := make([]int, len(fields))
	for i, field := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

// lineScanner yields one line at a time without its trailing newline.
// A final line without a newline is still yielded; clean end of stream is
// io.EOF.
type lineScanner struct {
	reader *bufio.Reader
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{reader: bufio.NewReader(r)}
}

func (s *lineScanner) next() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
