package main

import (
	"github.com/maramosh/parcial-practico-miguel/pkg/config/configloader"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configFile string
	envFile    string
}

func (f *globalFlags) loaderOptions() []configloader.Option {
	return []configloader.Option{
		configloader.WithConfigFile(f.configFile),
		configloader.WithEnvFile(f.envFile),
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Product and store catalog service",
		Long:          "Serves the catalog REST API, the gRPC health service and manages the database schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "config.yaml", "path to the YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "path to the dotenv file")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newMigrateCmd(flags))
	return cmd
}
