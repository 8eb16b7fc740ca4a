// Package codec reads and writes the mosaic delimited text format. The
// persisted layout is the concatenation of three sections in fixed order —
// points, line segments, shapes — on a single stream with no container
// format; section boundaries are literal header and trailer lines. Streams
// are caller-supplied and stay open; the package never opens or closes
// files.
package codec

import (
	"errors"
	"io"

	"github.com/viant/mosaic/mesh"
)

// Section marker lines. Readers match them byte for byte.
const (
	pointsHeader    = "Mosaic Points:"
	pointsTrailer   = "End of points."
	segmentsHeader  = "Mosaic Line Segments:"
	segmentsTrailer = "End of line segments."
	shapesHeader    = "Mosaic Shapes:"
	shapesTrailer   = "End of shapes."

	trianglesHeader      = "Triangles:"
	quadrilateralsHeader = "Quadrilaterals:"
)

// Sentinel errors for format violations while reading.
var (
	// ErrMalformedHeader indicates a section did not start with its expected header line.
	ErrMalformedHeader = errors.New("codec: malformed header")

	// ErrMalformedTrailer indicates the stream ended before a section's trailer line.
	ErrMalformedTrailer = errors.New("codec: missing trailer")

	// ErrMalformedRecord indicates a data line that does not parse as a record of its section.
	ErrMalformedRecord = errors.New("codec: malformed record")
)

// Write serializes the mesh to w: points, then segments, then shapes.
// Later sections reference earlier ones by position, so the order is fixed.
// On a mid-stream write error previously written lines remain in the
// stream; the caller owns recovery.
func Write(w io.Writer, m *mesh.Mesh) error {
	writer := NewWriter(w)
	if err := writer.WritePoints(m.Points); err != nil {
		return err
	}
	if err := writer.WriteSegments(m.Segments); err != nil {
		return err
	}
	return writer.WriteShapes(m.Shapes)
}

// Read deserializes a mesh written by Write, validating each section
// against the ones already loaded.
func Read(r io.Reader) (*mesh.Mesh, error) {
	reader := NewReader(r)
	m := mesh.NewMesh()
	if err := reader.ReadPoints(m.Points); err != nil {
		return nil, err
	}
	if err := reader.ReadSegments(m.Segments, m.Points.Len()); err != nil {
		return nil, err
	}
	if err := reader.ReadShapes(m.Shapes, m.Segments); err != nil {
		return nil, err
	}
	return m, nil
}
