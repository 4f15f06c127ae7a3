package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/agentbiz/onboard/engine/business"
	"github.com/agentbiz/onboard/engine/schema"
	"github.com/agentbiz/onboard/engine/validate"
)

type initFormData struct {
	Name           string
	Type           string
	Description    string
	Address        string
	City           string
	State          string
	PostalCode     string
	Country        string
	Timezone       string
	Email          string
	Phone          string
	ServiceID      string
	ServiceName    string
	ServiceDesc    string
	Category       string
	PaymentMethods []string
}

// InitCmd collects a minimum viable configuration interactively and writes it
// as a starter file for further editing.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter business configuration interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd)
			out, _ := cmd.Flags().GetString("output")
			data := &initFormData{Country: "US", Timezone: "America/New_York"}
			if err := newInitForm(data).Run(); err != nil {
				return fmt.Errorf("onboarding form aborted: %w", err)
			}
			cfg := buildConfig(data)
			if result := validate.Validate(cfg); !result.Valid {
				log.Warn("starter configuration is incomplete; edit it before exporting",
					"problems", len(result.Errors))
			}
			if err := writeYAML(out, cfg); err != nil {
				return err
			}
			log.Info("configuration written", "output", out)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "business.yaml", "destination file")
	return cmd
}

func newInitForm(data *initFormData) *huh.Form {
	typeOptions := make([]huh.Option[string], 0, len(schema.BusinessTypes()))
	for _, t := range schema.BusinessTypes() {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}
	methodOptions := make([]huh.Option[string], 0, len(schema.PaymentMethods()))
	for _, m := range schema.PaymentMethods() {
		methodOptions = append(methodOptions, huh.NewOption(string(m), string(m)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Business name").Value(&data.Name),
			huh.NewSelect[string]().Title("Business type").Options(typeOptions...).Value(&data.Type),
			huh.NewText().Title("Description").Value(&data.Description),
		),
		huh.NewGroup(
			huh.NewInput().Title("Street address").Value(&data.Address),
			huh.NewInput().Title("City").Value(&data.City),
			huh.NewInput().Title("State / province").Value(&data.State),
			huh.NewInput().Title("Postal code").Value(&data.PostalCode),
			huh.NewInput().Title("Country (2-letter code)").Value(&data.Country),
			huh.NewInput().Title("Timezone (IANA)").Value(&data.Timezone),
		),
		huh.NewGroup(
			huh.NewInput().Title("Contact email").Value(&data.Email),
			huh.NewInput().Title("Contact phone (optional)").Value(&data.Phone),
		),
		huh.NewGroup(
			huh.NewInput().Title("Service id (lowercase, underscores)").Value(&data.ServiceID),
			huh.NewInput().Title("Service name").Value(&data.ServiceName),
			huh.NewText().Title("Service description").Value(&data.ServiceDesc),
			huh.NewInput().Title("Service category").Value(&data.Category),
			huh.NewMultiSelect[string]().Title("Payment methods").Options(methodOptions...).Value(&data.PaymentMethods),
		),
	)
}

func buildConfig(data *initFormData) *business.Config {
	cfg := business.New()
	cfg.Name = data.Name
	cfg.Type = data.Type
	cfg.Description = data.Description
	cfg.Location = business.Location{
		Address:    data.Address,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Timezone:   data.Timezone,
	}
	cfg.Contact = business.ContactInfo{Email: data.Email, Phone: data.Phone}
	svc := &cfg.Services[0]
	svc.ServiceID = data.ServiceID
	svc.Name = data.ServiceName
	svc.Description = data.ServiceDesc
	svc.Category = data.Category
	svc.Payment.Methods = data.PaymentMethods
	cfg.SetDefaults()
	return cfg
}
