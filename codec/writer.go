package codec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/viant/mosaic/mesh"
)

// Writer emits mosaic sections to a caller-supplied stream, one section per
// store, records in insertion order.
type Writer struct {
	w io.Writer
}

// NewWriter creates a writer on the supplied stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WritePoints emits the points section: header line, one "x,y" line per
// point, trailer line.
func (w *Writer) WritePoints(points *mesh.PointStore) error {
	if err := w.line(pointsHeader); err != nil {
		return err
	}
	for _, point := range points.Points() {
		if err := w.line(formatFloat(point.X) + "," + formatFloat(point.Y)); err != nil {
			return err
		}
	}
	return w.line(pointsTrailer)
}

// WriteSegments emits the line segments section: one "start,end" line per
// segment.
func (w *Writer) WriteSegments(segments *mesh.SegmentStore) error {
	if err := w.line(segmentsHeader); err != nil {
		return err
	}
	for _, segment := range segments.Segments() {
		if err := w.line(fmt.Sprintf("%d,%d", segment.Start, segment.End)); err != nil {
			return err
		}
	}
	return w.line(segmentsTrailer)
}

// WriteShapes emits the shapes section: the triangles sub-section followed
// by the quadrilaterals sub-section, each record listing its segment
// positions and RGB channels.
func (w *Writer) WriteShapes(shapes *mesh.ShapeStore) error {
	if err := w.line(shapesHeader); err != nil {
		return err
	}
	if err := w.line(trianglesHeader); err != nil {
		return err
	}
	for _, shape := range shapes.Triangles() {
		if err := w.line(formatShape(shape)); err != nil {
			return err
		}
	}
	if err := w.line(quadrilateralsHeader); err != nil {
		return err
	}
	for _, shape := range shapes.Quadrilaterals() {
		if err := w.line(formatShape(shape)); err != nil {
			return err
		}
	}
	return w.line(shapesTrailer)
}

func (w *Writer) line(text string) error {
	_, err := io.WriteString(w.w, text+"\n")
	return err
}

// formatFloat uses the shortest decimal form that parses back to the same
// float64, so written coordinates round-trip exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatShape(shape mesh.Shape) string {
	record := ""
	for _, index := range shape.Segments {
		record += strconv.Itoa(index) + ","
	}
	return record + fmt.Sprintf("%d,%d,%d", shape.Color.R, shape.Color.G, shape.Color.B)
}
