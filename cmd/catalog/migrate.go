package main

import (
	"fmt"
	"os"

	"github.com/maramosh/parcial-practico-miguel/pkg/bootstrap"
	"github.com/maramosh/parcial-practico-miguel/pkg/config"
	"github.com/maramosh/parcial-practico-miguel/pkg/config/configloader"
	"github.com/spf13/cobra"
)

// migrateConfig is the subset of the service configuration the migrate commands need.
type migrateConfig struct {
	Database config.DatabaseConfig `koanf:"database"`
	Log      config.LogConfig      `koanf:"log"`
}

func (c *migrateConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the catalog database schema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := configloader.Load[*migrateConfig](serviceName, flags.loaderOptions()...)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return bootstrap.MigrateUp(cfg.Database.URL, bootstrap.NewLogger(os.Stdout, cfg.Log.Level))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every applied migration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := configloader.Load[*migrateConfig](serviceName, flags.loaderOptions()...)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return bootstrap.MigrateDown(cfg.Database.URL, bootstrap.NewLogger(os.Stdout, cfg.Log.Level))
		},
	})
	return cmd
}
