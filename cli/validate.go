package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentbiz/onboard/engine/validate"
)

// ValidateCmd checks a business configuration file and prints every violation.
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a business configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd)
			path, _ := cmd.Flags().GetString("file")
			cfg, err := loadBusinessConfig(path)
			if err != nil {
				return err
			}
			result := validate.Validate(cfg)
			if result.Valid {
				log.Info("configuration is valid", "file", path, "services", len(cfg.Services))
				return nil
			}
			for _, msg := range result.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			return fmt.Errorf("configuration has %d validation errors", len(result.Errors))
		},
	}
	cmd.Flags().StringP("file", "f", "business.yaml", "path to the business configuration")
	return cmd
}
