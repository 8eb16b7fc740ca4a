package repository

import (
	"github.com/minio/highwayhash"
	"github.com/viant/mosaic/codec"
	"github.com/viant/mosaic/mesh"
)

var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint hashes the canonical encoded form of the mesh. Meshes with
// identical records fingerprint equal; any record change changes the value.
func Fingerprint(m *mesh.Mesh) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	if err := codec.Write(hash, m); err != nil {
		return 0, err
	}
	return hash.Sum64(), nil
}
