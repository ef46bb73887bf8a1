package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <file> <line>",
		Short: "Open the view of the action defined on a line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil || line < 1 {
				return zerr.With(domain.ErrInvalidLine, "line", args[1])
			}
			return c.app.OpenView(cmd.Context(), c.workspace, args[0], line-1)
		},
	}
}
