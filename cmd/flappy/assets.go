package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage game art",
}

var assetsExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the built-in art as PNG files",
	Long: `Write bird1.png, bird2.png, bird3.png, pipe.png, base.png and bg.png at
their original size. Edit them and play with --assets <dir>.

Examples:
  flappy assets export ./imgs
  flappy --assets ./imgs`,
	Args: cobra.ExactArgs(1),
	Run:  runAssetsExport,
}

func init() {
	assetsCmd.AddCommand(assetsExportCmd)
}

func runAssetsExport(_ *cobra.Command, args []string) {
	dir := expandHome(args[0])
	if err := sprite.Generate().Save(dir); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Wrote default art to %s\n", dir)
}
