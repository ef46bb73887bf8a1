// Package commands implements the CLI commands for routelens.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/routelens/internal/app"
	"go.trai.ch/routelens/internal/build"
	"go.trai.ch/routelens/internal/core/domain"
)

const skipStartup = "routelens/skip-startup"

// CLI represents the command line interface for routelens.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	workspace string
	release   func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options) func(context.Context) error
	Startup(ctx context.Context, workspace string)
	Regenerate(ctx context.Context, workspace string) error
	Annotate(ctx context.Context, workspace, path string) ([]domain.Annotation, error)
	ControllerFiles(workspace string) []string
	OpenView(ctx context.Context, workspace, path string, line int) error
	Watch(ctx context.Context, workspace string, update app.UpdateFunc) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "routelens",
		Short:         "Route and view annotations for Rails controllers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "Workspace root of the Rails application")
	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Configuration file name inside the workspace")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a line for every finished trace span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.setup
	rootCmd.PersistentPostRunE = c.teardown

	rootCmd.AddCommand(c.newAnnotateCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newOpenCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("workspace")
	configFile, _ := cmd.Flags().GetString("config")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	trace, _ := cmd.Flags().GetBool("trace")

	ws, err := app.Workspace(dir)
	if err != nil {
		return err
	}
	c.workspace = ws

	c.release = c.app.Configure(app.Options{
		ConfigFile: configFile,
		LogJSON:    logJSON,
		Trace:      trace,
	})

	if _, skip := cmd.Annotations[skipStartup]; !skip {
		c.app.Startup(cmd.Context(), ws)
	}
	return nil
}

func (c *CLI) teardown(cmd *cobra.Command, _ []string) error {
	if c.release == nil {
		return nil
	}
	return c.release(cmd.Context())
}
