package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/dbconf/internal/store"
	"github.com/DaanHessen/dbconf/internal/util"
)

const migrateTimeout = 30 * time.Second

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back migrations from " + util.MigrationsDir,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(ctx context.Context, m *store.Migrator) error {
					return report(cmd, m.Up(ctx), "Migrations applied")
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(ctx context.Context, m *store.Migrator) error {
					return report(cmd, m.Down(ctx), "Migrations rolled back")
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(ctx context.Context, m *store.Migrator) error {
					v, dirty, err := m.Version(ctx)
					if errors.Is(err, store.ErrNilVersion) {
						fmt.Fprintln(cmd.OutOrStdout(), "No migrations applied")
						return nil
					}
					if err != nil {
						return err
					}
					printVersion(cmd, v, dirty)
					return nil
				})
			},
		},
	)
	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(context.Context, *store.Migrator) error) error {
	cfg, err := util.Load()
	if err != nil {
		return err
	}
	m, err := store.NewMigrator(cfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()
	return fn(ctx, m)
}

func report(cmd *cobra.Command, err error, done string) error {
	switch {
	case errors.Is(err, store.ErrNoChange):
		fmt.Fprintln(cmd.OutOrStdout(), "No change")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}

func printVersion(cmd *cobra.Command, v uint, dirty bool) {
	if dirty {
		fmt.Fprintf(cmd.OutOrStdout(), "Version %d (dirty)\n", v)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Version %d\n", v)
}
