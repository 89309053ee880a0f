// Package cli defines the catalog command line.
//
//	catalog                 run the demo scenario (same as "catalog demo")
//	catalog demo [flags]    run the demo scenario
//	catalog version         print the build version
//
// Flags override the DATABASE_* and LOG_* environment variables.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrlokans/catalog/internal/config"
)

// BuildInfo is set by main from ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(info BuildInfo, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Library catalog demo on a relational database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String(config.FlagDriver, config.DefaultDriver, "database driver: sqlite, mysql or postgres")
	flags.String(config.FlagDSN, config.DefaultDSN, "database connection string")
	flags.String(config.FlagLogLevel, "info", "log level")
	flags.Bool(config.FlagLogSQL, false, "log every SQL statement")

	demoCmd := newDemoCommand(info)
	root.AddCommand(demoCmd, newVersionCommand(info))
	root.RunE = demoCmd.RunE

	return root
}
