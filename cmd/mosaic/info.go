package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/mosaic/mesh"
	"github.com/viant/mosaic/repository"
)

var infoCmd = &cobra.Command{
	Use:   "info <mosaic>",
	Short: "Print counts, bounding rectangle and fingerprint of a mosaic file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	repo := repository.New()
	m, err := repo.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fingerprint, err := repository.Fingerprint(m)
	if err != nil {
		return err
	}
	fmt.Printf("points:         %d\n", m.Points.Len())
	fmt.Printf("segments:       %d\n", m.Segments.Len())
	fmt.Printf("triangles:      %d\n", m.Shapes.Len(mesh.Triangle))
	fmt.Printf("quadrilaterals: %d\n", m.Shapes.Len(mesh.Quadrilateral))

	box, err := m.Points.BoundingRectangle()
	switch {
	case errors.Is(err, mesh.ErrEmptyCollection):
		fmt.Println("bounds:         none (no points)")
	case err != nil:
		return err
	default:
		fmt.Printf("bounds:         (%g,%g)-(%g,%g)\n", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	}
	fmt.Printf("fingerprint:    %016x\n", fingerprint)
	return nil
}
