package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jig/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available recipes in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			return c.app.List(cmd.Context(), app.Options{Manifest: manifestPath})
		},
	}
}
