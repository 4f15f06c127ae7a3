package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentbiz/onboard/engine/validate"
	"github.com/agentbiz/onboard/engine/wire"
)

// ExportCmd validates a configuration and emits the registration payload.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert a business configuration into the registration payload",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd)
			path, _ := cmd.Flags().GetString("file")
			out, _ := cmd.Flags().GetString("output")
			cfg, err := loadBusinessConfig(path)
			if err != nil {
				return err
			}
			if result := validate.Validate(cfg); !result.Valid {
				for _, msg := range result.Errors {
					fmt.Fprintln(cmd.OutOrStdout(), msg)
				}
				return fmt.Errorf("refusing to export: configuration has %d validation errors", len(result.Errors))
			}
			payload, err := wire.ToWire(cfg)
			if err != nil {
				return err
			}
			if err := writeJSON(out, payload); err != nil {
				return err
			}
			log.Info("payload exported", "file", path, "output", out, "slug", payload.Slug)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "business.yaml", "path to the business configuration")
	cmd.Flags().StringP("output", "o", "-", "destination file (- for stdout)")
	return cmd
}
