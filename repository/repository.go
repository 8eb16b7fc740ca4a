// Package repository persists mosaic designs through the abstract file
// system, so a design location can be a plain path or a URL (file://,
// mem://, s3://).
package repository

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/mosaic/codec"
	"github.com/viant/mosaic/mesh"
)

// Repository loads and stores mosaic designs.
type Repository struct {
	fs afs.Service
}

// New creates a repository backed by the default abstract file system.
func New() *Repository {
	return &Repository{fs: afs.New()}
}

// Save encodes the mesh in the mosaic text format and uploads it to the
// given location.
func (r *Repository) Save(ctx context.Context, URL string, m *mesh.Mesh) error {
	buf := new(bytes.Buffer)
	if err := codec.Write(buf, m); err != nil {
		return err
	}
	if err := r.fs.Upload(ctx, URL, 0644, buf); err != nil {
		return fmt.Errorf("failed to upload mosaic %v: %w", URL, err)
	}
	return nil
}

// Load downloads and decodes the mosaic at the given location.
func (r *Repository) Load(ctx context.Context, URL string) (*mesh.Mesh, error) {
	data, err := r.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download mosaic %v: %w", URL, err)
	}
	return codec.Read(bytes.NewReader(data))
}

// Exists reports whether a mosaic is stored at the given location.
func (r *Repository) Exists(ctx context.Context, URL string) (bool, error) {
	return r.fs.Exists(ctx, URL)
}

// Modified reports whether the stored mosaic differs from the in-memory
// mesh, by fingerprint comparison.
func (r *Repository) Modified(ctx context.Context, URL string, m *mesh.Mesh) (bool, error) {
	stored, err := r.Load(ctx, URL)
	if err != nil {
		return false, err
	}
	storedHash, err := Fingerprint(stored)
	if err != nil {
		return false, err
	}
	localHash, err := Fingerprint(m)
	if err != nil {
		return false, err
	}
	return storedHash != localHash, nil
}
