package repository

import (
	"context"
	"fmt"

	"github.com/viant/mosaic/mesh"
	"gopkg.in/yaml.v3"
)

// Manifest is a YAML description of a mosaic design. Segments reference
// points and shapes reference segments by list position, mirroring the
// mosaic text format.
type Manifest struct {
	Points         []ManifestPoint   `yaml:"points"`
	Segments       []ManifestSegment `yaml:"segments"`
	Triangles      []ManifestShape   `yaml:"triangles,omitempty"`
	Quadrilaterals []ManifestShape   `yaml:"quadrilaterals,omitempty"`
}

// ManifestPoint is a 2D coordinate entry.
type ManifestPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ManifestSegment joins two points by list position.
type ManifestSegment struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// ManifestShape is a segment cycle plus a fill color.
type ManifestShape struct {
	Segments []int         `yaml:"segments"`
	Color    ManifestColor `yaml:"color"`
}

// ManifestColor is an 8-bit RGB color.
type ManifestColor struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Build assembles a mesh from the manifest through the validating store
// operations, so a segment referencing a missing point fails with
// ErrInvalidReference and a shape whose segments do not close fails with
// ErrUnclosedShape.
func (m *Manifest) Build() (*mesh.Mesh, error) {
	result := mesh.NewMesh()
	for _, point := range m.Points {
		result.Points.Add(point.X, point.Y)
	}
	pointCount := result.Points.Len()
	for _, segment := range m.Segments {
		if segment.Start < 0 || segment.Start >= pointCount || segment.End < 0 || segment.End >= pointCount {
			return nil, fmt.Errorf("%w: segment (%d,%d) against %d points", mesh.ErrInvalidReference, segment.Start, segment.End, pointCount)
		}
		result.Segments.Add(segment.Start, segment.End)
	}
	for i, shape := range m.Triangles {
		if len(shape.Segments) != 3 {
			return nil, fmt.Errorf("triangle %d must list 3 segments, got %d", i, len(shape.Segments))
		}
		color := mesh.Color{R: shape.Color.R, G: shape.Color.G, B: shape.Color.B}
		if err := result.Shapes.AddTriangle(shape.Segments[0], shape.Segments[1], shape.Segments[2], result.Segments, color); err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
	}
	for i, shape := range m.Quadrilaterals {
		if len(shape.Segments) != 4 {
			return nil, fmt.Errorf("quadrilateral %d must list 4 segments, got %d", i, len(shape.Segments))
		}
		color := mesh.Color{R: shape.Color.R, G: shape.Color.G, B: shape.Color.B}
		if err := result.Shapes.AddQuadrilateral(shape.Segments[0], shape.Segments[1], shape.Segments[2], shape.Segments[3], result.Segments, color); err != nil {
			return nil, fmt.Errorf("quadrilateral %d: %w", i, err)
		}
	}
	return result, nil
}

// LoadManifest reads a YAML manifest from the given location and builds the
// mesh it describes.
func (r *Repository) LoadManifest(ctx context.Context, URL string) (*mesh.Mesh, error) {
	data, err := r.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download manifest %v: %w", URL, err)
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %v: %w", URL, err)
	}
	return manifest.Build()
}
