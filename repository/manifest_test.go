package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mosaic/mesh"
	"gopkg.in/yaml.v3"
)

const validManifest = `
points:
  - {x: 0, y: 0}
  - {x: 4, y: 0}
  - {x: 2, y: 3}
segments:
  - {start: 0, end: 1}
  - {start: 1, end: 2}
  - {start: 2, end: 0}
triangles:
  - segments: [0, 1, 2]
    color: {r: 255}
`

func TestManifestBuild(t *testing.T) {
	manifest := &Manifest{}
	require.NoError(t, yaml.Unmarshal([]byte(validManifest), manifest))

	m, err := manifest.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Points.Len())
	assert.Equal(t, 3, m.Segments.Len())
	assert.Equal(t, 1, m.Shapes.Len(mesh.Triangle))

	triangle, err := m.Shapes.At(mesh.Triangle, 0)
	require.NoError(t, err)
	assert.Equal(t, mesh.Color{R: 255}, triangle.Color)
}

func TestManifestBuildValidation(t *testing.T) {
	tests := []struct {
		description string
		manifest    string
		expectErr   error
	}{
		{
			description: "segment references missing point",
			manifest: `
points:
  - {x: 0, y: 0}
segments:
  - {start: 0, end: 5}
`,
			expectErr: mesh.ErrInvalidReference,
		},
		{
			description: "unclosed triangle",
			manifest: `
points:
  - {x: 0, y: 0}
  - {x: 1, y: 0}
  - {x: 2, y: 0}
  - {x: 3, y: 0}
segments:
  - {start: 0, end: 1}
  - {start: 1, end: 2}
  - {start: 2, end: 3}
triangles:
  - segments: [0, 1, 2]
    color: {r: 255}
`,
			expectErr: mesh.ErrUnclosedShape,
		},
	}
	for _, tc := range tests {
		manifest := &Manifest{}
		require.NoError(t, yaml.Unmarshal([]byte(tc.manifest), manifest), tc.description)
		_, err := manifest.Build()
		assert.ErrorIs(t, err, tc.expectErr, tc.description)
	}
}

func TestManifestBuildWrongCycleLength(t *testing.T) {
	manifest := &Manifest{
		Points:    []ManifestPoint{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Segments:  []ManifestSegment{{Start: 0, End: 1}, {Start: 1, End: 0}},
		Triangles: []ManifestShape{{Segments: []int{0, 1}}},
	}
	_, err := manifest.Build()
	assert.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	location := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(location, []byte(validManifest), 0644))

	repo := New()
	m, err := repo.LoadManifest(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Points.Len())
	assert.Equal(t, 1, m.Shapes.Len(mesh.Triangle))
}
