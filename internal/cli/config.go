package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/dbconf/internal/ui"
	"github.com/DaanHessen/dbconf/internal/util"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print a summary of the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := util.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Summary(cfg, opts.theme))
			return nil
		},
	}

	var format string
	render := &cobra.Command{
		Use:   "render",
		Short: "Write the resolved configuration for the migration generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := util.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := util.Load()
			if err != nil {
				return err
			}
			return util.Encode(cmd.OutOrStdout(), cfg, f)
		},
	}
	render.Flags().StringVarP(&format, "format", "f", "json", "output format: json|yaml|toml")

	cmd.AddCommand(show, render)
	return cmd
}
