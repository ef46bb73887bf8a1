package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "refresh",
		Short:       "Regenerate the route dump",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipStartup: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Regenerate(cmd.Context(), c.workspace); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "route dump regenerated")
			return nil
		},
	}
}
