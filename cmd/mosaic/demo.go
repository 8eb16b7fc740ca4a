package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/mosaic/mesh"
	"github.com/viant/mosaic/repository"
	"go.uber.org/zap"
)

var demoOutput string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write the sample mosaic design to a file",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "mosaic.txt", "destination path or URL")
}

func runDemo(cmd *cobra.Command, args []string) error {
	m, err := mesh.Demo()
	if err != nil {
		return err
	}
	repo := repository.New()
	if err := repo.Save(cmd.Context(), demoOutput, m); err != nil {
		return err
	}
	logger.Info("wrote demo mosaic",
		zap.String("output", demoOutput),
		zap.Int("points", m.Points.Len()),
		zap.Int("segments", m.Segments.Len()),
		zap.Int("triangles", m.Shapes.Len(mesh.Triangle)),
		zap.Int("quadrilaterals", m.Shapes.Len(mesh.Quadrilateral)))
	return nil
}
