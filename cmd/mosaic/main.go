// Command mosaic creates and inspects mosaic design files. It is a thin
// driver over the mesh, codec and repository packages.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:           "mosaic",
	Short:         "Create and inspect mosaic design files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd.AddCommand(demoCmd, convertCmd, infoCmd)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
