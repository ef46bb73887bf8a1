package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/routelens/internal/core/domain"
	"go.trai.ch/routelens/internal/ui/output"
	"go.trai.ch/routelens/internal/ui/style"
)

type fileAnnotations struct {
	Path        string              `json:"path"`
	Annotations []domain.Annotation `json:"annotations"`
}

func (c *CLI) newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate [controller files...]",
		Short: "Print route annotations for controller files",
		Long:  "Print route annotations for the given controller files, or for every controller in the workspace when none are given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			paths := args
			if len(paths) == 0 {
				paths = c.app.ControllerFiles(c.workspace)
			}

			results := make([]fileAnnotations, 0, len(paths))
			for _, path := range paths {
				annotations, err := c.app.Annotate(cmd.Context(), c.workspace, path)
				if err != nil {
					return err
				}
				results = append(results, fileAnnotations{Path: path, Annotations: annotations})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, r := range results {
				printAnnotations(cmd.OutOrStdout(), c.relative(r.Path), r.Annotations)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print annotations as JSON")
	return cmd
}

func printAnnotations(w io.Writer, path string, annotations []domain.Annotation) {
	out := output.New(w)
	prefix := out.String(path).Foreground(termenv.RGBColor(style.Slate)).String()
	for _, ann := range annotations {
		_, _ = fmt.Fprintf(w, "%s:%d: %s\n", prefix, ann.Line+1, ann.Title)
	}
}

func (c *CLI) relative(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	if rel, err := filepath.Rel(c.workspace, path); err == nil {
		return rel
	}
	return path
}
