package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/routelens/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the workspace and print annotations as controllers change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), c.workspace, func(path string, annotations []domain.Annotation) {
				printAnnotations(cmd.OutOrStdout(), c.relative(path), annotations)
			})
		},
	}
}
