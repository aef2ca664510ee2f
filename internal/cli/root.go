// Package cli wires the dbconf commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/DaanHessen/dbconf/internal/logger"
	"github.com/DaanHessen/dbconf/internal/ui"
	"github.com/DaanHessen/dbconf/internal/util"
)

var version = "0.1.0"

type options struct {
	envFile string
	verbose bool
	theme   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "dbconf",
		Short: "Resolve the migration database config from the environment",
		Long: `dbconf reads NETWORK, DB_URL and DB_TOKEN (optionally from a .env file)
and resolves the database the migration tooling should target:
NETWORK=testnet selects the hosted turso database, anything else the
embedded sqlite file at ` + util.LocalDatabasePath + `.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetVerbose(opts.verbose)
			if opts.envFile == "" {
				return nil
			}
			return util.LoadDotEnv(opts.envFile)
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment (empty to skip)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print debug output")
	root.PersistentFlags().StringVar(&opts.theme, "theme", ui.DefaultTheme, "colour theme for config show")

	root.AddCommand(
		newConfigCmd(opts),
		newMigrateCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
