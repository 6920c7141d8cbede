package main

import (
	"github.com/spf13/cobra"
)

// appVersion is set at build time
var appVersion = "0.1.0"

// rootOptions holds the flags shared by every command
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "springweb",
		Short: "springweb - parameter binding sample service",
		Long: `springweb serves a small HTTP API and two HTML pages that show
path variable, query parameter, request body and configuration value binding.

Commands:
  serve   - Start the HTTP server (default)
  values  - Print the configured values

Example:
  springweb --config ./config/values.properties
  springweb values --json`,
		Version:       appVersion,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to values.properties (searched in ., ./config and /etc/springweb when empty)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newValuesCmd(opts))

	return cmd
}
