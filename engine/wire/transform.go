package wire

import (
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/agentbiz/onboard/engine/business"
	"github.com/agentbiz/onboard/engine/integration"
	"github.com/agentbiz/onboard/engine/schema"
	"github.com/agentbiz/onboard/engine/service"
)

// ToWire converts a validated business configuration into the registration
// payload. It assumes cfg already passed engine/validate and does not
// re-validate; a nil config or a structurally impossible one is a contract
// violation reported as an error. The input is never mutated.
func ToWire(cfg *business.Config) (*Payload, error) {
	if cfg == nil {
		return nil, fmt.Errorf("business configuration is required")
	}
	p := &Payload{
		BusinessName: cfg.Name,
		BusinessType: cfg.Type,
		Description:  cfg.Description,
		Website:      cfg.Website,
		Capacity:     copyIntPtr(cfg.Capacity),
		Slug:         Slugify(cfg.Name),
		Location:     locationToWire(&cfg.Location),
		Contact:      contactToWire(&cfg.Contact),
		Integration:  integrationToWire(&cfg.Integration),
		AP2:          ap2ToWire(&cfg.AP2),
	}
	p.Services = make([]Service, len(cfg.Services))
	for i := range cfg.Services {
		p.Services[i] = serviceToWire(&cfg.Services[i])
	}
	return p, nil
}

func locationToWire(loc *business.Location) Location {
	out := Location{
		Address:    loc.Address,
		City:       loc.City,
		State:      loc.State,
		PostalCode: loc.PostalCode,
		Country:    loc.Country,
		Timezone:   loc.Timezone,
	}
	if loc.Coordinates != nil {
		out.Coordinates = &Coordinates{
			Latitude:  loc.Coordinates.Latitude,
			Longitude: loc.Coordinates.Longitude,
		}
	}
	return out
}

func contactToWire(contact *business.ContactInfo) Contact {
	return Contact{
		Email:          contact.Email,
		Phone:          NormalizePhone(contact.Phone),
		SecondaryEmail: contact.SecondaryEmail,
		BusinessHours:  contact.BusinessHours,
	}
}

func serviceToWire(svc *service.Config) Service {
	out := Service{
		ServiceID:   svc.ServiceID,
		Name:        svc.Name,
		Description: svc.Description,
		Category:    svc.Category,
		Workflow:    workflowToWire(&svc.Workflow),
		Availability: Availability{
			RealTime:           svc.Availability.RealTime,
			CacheTimeout:       intOrDefault(svc.Availability.CacheTimeout, schema.LimitCacheTimeoutSeconds),
			AdvanceBookingDays: intOrDefault(svc.Availability.AdvanceBookingDays, schema.LimitAdvanceBookingDays),
			Endpoint:           svc.Availability.Endpoint,
		},
		CancellationPolicy: CancellationPolicy{
			Type:                  svc.Cancellation.Type,
			FreeCancellationHours: svc.Cancellation.FreeCancellationHours,
			PenaltyPercentage:     svc.Cancellation.PenaltyPercentage,
			Description:           svc.Cancellation.Description,
		},
		Payment: Payment{
			Methods:           append([]string(nil), svc.Payment.Methods...),
			Timing:            svc.Payment.Timing,
			DepositRequired:   svc.Payment.DepositRequired,
			DepositPercentage: copyFloatPtr(svc.Payment.DepositPercentage),
		},
		Policies: Policies{
			ModificationFee: svc.Policies.ModificationFee,
			NoShowPenalty:   svc.Policies.NoShowPenalty,
		},
	}
	out.Parameters = make([]Parameter, len(svc.Parameters))
	for i := range svc.Parameters {
		out.Parameters[i] = parameterToWire(&svc.Parameters[i])
	}
	return out
}

func workflowToWire(wf *service.Workflow) Workflow {
	out := Workflow{Pattern: wf.Pattern}
	if len(wf.Steps) > 0 {
		out.Steps = make([]WorkflowStep, len(wf.Steps))
		for i, step := range wf.Steps {
			out.Steps[i] = WorkflowStep{
				Name:           step.Name,
				Description:    step.Description,
				TimeoutMinutes: copyIntPtr(step.TimeoutMinutes),
				RetryAttempts:  copyIntPtr(step.RetryAttempts),
			}
		}
	}
	return out
}

func parameterToWire(param *service.Parameter) Parameter {
	out := Parameter{
		Name:        param.Name,
		Type:        param.Type,
		Description: param.Description,
		Required:    param.Required,
		Constraints: constraintsToWire(param.Constraints),
	}
	if param.Default != nil {
		out.Default = deepcopy.Copy(param.Default)
	}
	if param.Pricing != nil {
		out.Pricing = pricingToWire(param.Pricing)
	}
	return out
}

// pricingToWire default-injects every absent pricing sub-field; the wire
// schema requires the full rate card once pricing is declared.
func pricingToWire(pricing *service.Pricing) *Pricing {
	currency := pricing.Currency
	if currency == "" {
		currency = schema.DefaultCurrency
	}
	return &Pricing{
		BaseRate:      pricing.BaseRate,
		Currency:      currency,
		TaxRate:       pricing.TaxRate,
		ServiceFee:    pricing.ServiceFee,
		MinimumCharge: copyFloatPtr(pricing.MinimumCharge),
	}
}

func integrationToWire(cfg *integration.Config) Integration {
	out := Integration{}
	if !cfg.MCP.AutoGenerate {
		out.MCP.Endpoint = cfg.MCP.Endpoint
	}
	if !cfg.A2A.AutoGenerate {
		out.A2A.Endpoint = cfg.A2A.Endpoint
	}
	if !cfg.Webhooks.AutoGenerate {
		out.Webhooks.Endpoint = cfg.Webhooks.Endpoint
	}
	if len(cfg.Webhooks.Events) > 0 {
		out.Webhooks.Events = append([]string(nil), cfg.Webhooks.Events...)
	}
	return out
}

func ap2ToWire(cfg *integration.AP2Config) *AP2 {
	if !cfg.Enabled {
		return nil
	}
	return &AP2{
		Enabled:              true,
		MandateExpiryHours:   cfg.MandateExpiryHours,
		VerificationRequired: cfg.VerificationRequired,
	}
}

func intOrDefault(p *int, limitKey string) int {
	if p != nil {
		return *p
	}
	return int(schema.LimitFor(limitKey).Default)
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
