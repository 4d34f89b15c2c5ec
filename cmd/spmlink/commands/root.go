// Package commands implements the CLI commands for spmlink.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/spmlink/internal/app"
	"go.trai.ch/spmlink/internal/build"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports"
)

// CLI represents the command line interface for spmlink.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Apply(ctx context.Context, opts app.RunOptions) (*domain.Report, error)
	Packages(manifestPath string) ([]domain.PackageCoordinate, error)
}

// New creates a new CLI instance with the given app. The logger is switched to JSON output
// by --log-json when it supports it.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "spmlink",
		Short:         "Link Swift packages into an Xcode project and its Podfile",
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

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().Bool("log-json", false, "Write log lines as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if j, ok := c.logger.(interface{ SetJSON(bool) }); ok && jsonLogs {
			j.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newPackagesCmd())
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
