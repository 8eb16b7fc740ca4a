package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/mosaic/repository"
	"go.uber.org/zap"
)

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert <manifest>",
	Short: "Build a mosaic file from a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "mosaic.txt", "destination path or URL")
}

func runConvert(cmd *cobra.Command, args []string) error {
	repo := repository.New()
	m, err := repo.LoadManifest(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := repo.Save(cmd.Context(), convertOutput, m); err != nil {
		return err
	}
	logger.Info("converted manifest",
		zap.String("manifest", args[0]),
		zap.String("output", convertOutput))
	return nil
}
