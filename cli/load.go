package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentbiz/onboard/engine/wire"
)

// LoadCmd converts an existing registration payload back into the editable
// configuration so a business can be re-opened for editing.
func LoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Convert a registration payload back into an editable configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd)
			path, _ := cmd.Flags().GetString("file")
			out, _ := cmd.Flags().GetString("output")
			payload, err := loadWirePayload(path)
			if err != nil {
				return err
			}
			cfg, err := wire.FromWire(payload)
			if err != nil {
				return err
			}
			if err := writeYAML(out, cfg); err != nil {
				return err
			}
			log.Info("payload loaded", "file", path, "output", out, "services", len(cfg.Services))
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "payload.json", "path to the registration payload")
	cmd.Flags().StringP("output", "o", "-", "destination file (- for stdout)")
	return cmd
}
