// Package cli is the thin host layer around the onboarding engine: it loads
// and saves configuration files and delegates every decision to
// engine/validate and engine/wire.
package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agentbiz/onboard/pkg/logger"
)

// RootCmd builds the onboard command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "onboard",
		Short:         "Validate and export agentic business registrations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(
		ValidateCmd(),
		ExportCmd(),
		LoadCmd(),
		InitCmd(),
	)
	return root
}

// newLogger builds the command logger tagged with a per-invocation session id.
func newLogger(cmd *cobra.Command) logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	asJSON, _ := cmd.Flags().GetBool("log-json")
	cfg := logger.DefaultConfig()
	cfg.Level = level
	cfg.JSON = asJSON
	return logger.New(cfg).With("session", uuid.NewString())
}
