package wire

import (
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/agentbiz/onboard/engine/business"
	"github.com/agentbiz/onboard/engine/integration"
	"github.com/agentbiz/onboard/engine/service"
)

// FromWire rebuilds the editable configuration from a registration payload,
// the path used when loading an existing record for editing. AutoGenerate
// flags are derived from endpoint absence, mirroring the forward omission
// rule; the derived slug is not carried back.
func FromWire(p *Payload) (*business.Config, error) {
	if p == nil {
		return nil, fmt.Errorf("wire payload is required")
	}
	cfg := &business.Config{
		Name:        p.BusinessName,
		Type:        p.BusinessType,
		Description: p.Description,
		Website:     p.Website,
		Capacity:    copyIntPtr(p.Capacity),
		Location:    locationFromWire(&p.Location),
		Contact:     contactFromWire(&p.Contact),
		Integration: integrationFromWire(&p.Integration),
		AP2:         ap2FromWire(p.AP2),
	}
	cfg.Services = make([]service.Config, len(p.Services))
	for i := range p.Services {
		cfg.Services[i] = serviceFromWire(&p.Services[i])
	}
	return cfg, nil
}

func locationFromWire(loc *Location) business.Location {
	out := business.Location{
		Address:    loc.Address,
		City:       loc.City,
		State:      loc.State,
		PostalCode: loc.PostalCode,
		Country:    loc.Country,
		Timezone:   loc.Timezone,
	}
	if loc.Coordinates != nil {
		out.Coordinates = &business.Coordinates{
			Latitude:  loc.Coordinates.Latitude,
			Longitude: loc.Coordinates.Longitude,
		}
	}
	return out
}

func contactFromWire(contact *Contact) business.ContactInfo {
	return business.ContactInfo{
		Email:          contact.Email,
		Phone:          contact.Phone,
		SecondaryEmail: contact.SecondaryEmail,
		BusinessHours:  contact.BusinessHours,
	}
}

func serviceFromWire(svc *Service) service.Config {
	cacheTimeout := svc.Availability.CacheTimeout
	advanceBooking := svc.Availability.AdvanceBookingDays
	out := service.Config{
		ServiceID:   svc.ServiceID,
		Name:        svc.Name,
		Description: svc.Description,
		Category:    svc.Category,
		Workflow:    workflowFromWire(&svc.Workflow),
		Availability: service.Availability{
			RealTime:           svc.Availability.RealTime,
			CacheTimeout:       &cacheTimeout,
			AdvanceBookingDays: &advanceBooking,
			Endpoint:           svc.Availability.Endpoint,
		},
		Cancellation: service.CancellationPolicy{
			Type:                  svc.CancellationPolicy.Type,
			FreeCancellationHours: svc.CancellationPolicy.FreeCancellationHours,
			PenaltyPercentage:     svc.CancellationPolicy.PenaltyPercentage,
			Description:           svc.CancellationPolicy.Description,
		},
		Payment: service.PaymentConfig{
			Methods:           append([]string(nil), svc.Payment.Methods...),
			Timing:            svc.Payment.Timing,
			DepositRequired:   svc.Payment.DepositRequired,
			DepositPercentage: copyFloatPtr(svc.Payment.DepositPercentage),
		},
		Policies: service.Policies{
			ModificationFee: svc.Policies.ModificationFee,
			NoShowPenalty:   svc.Policies.NoShowPenalty,
		},
	}
	out.Parameters = make([]service.Parameter, len(svc.Parameters))
	for i := range svc.Parameters {
		out.Parameters[i] = parameterFromWire(&svc.Parameters[i])
	}
	return out
}

func workflowFromWire(wf *Workflow) service.Workflow {
	out := service.Workflow{Pattern: wf.Pattern}
	if len(wf.Steps) > 0 {
		out.Steps = make([]service.WorkflowStep, len(wf.Steps))
		for i, step := range wf.Steps {
			out.Steps[i] = service.WorkflowStep{
				Name:           step.Name,
				Description:    step.Description,
				TimeoutMinutes: copyIntPtr(step.TimeoutMinutes),
				RetryAttempts:  copyIntPtr(step.RetryAttempts),
			}
		}
	}
	return out
}

func parameterFromWire(param *Parameter) service.Parameter {
	out := service.Parameter{
		Name:        param.Name,
		Type:        param.Type,
		Description: param.Description,
		Required:    param.Required,
		Constraints: constraintsFromWire(param.Constraints),
	}
	if param.Default != nil {
		out.Default = deepcopy.Copy(param.Default)
	}
	if param.Pricing != nil {
		out.Pricing = &service.Pricing{
			BaseRate:      param.Pricing.BaseRate,
			Currency:      param.Pricing.Currency,
			TaxRate:       param.Pricing.TaxRate,
			ServiceFee:    param.Pricing.ServiceFee,
			MinimumCharge: copyFloatPtr(param.Pricing.MinimumCharge),
		}
	}
	return out
}

func integrationFromWire(cfg *Integration) integration.Config {
	out := integration.Config{
		MCP: integration.Endpoint{
			AutoGenerate: cfg.MCP.Endpoint == "",
			Endpoint:     cfg.MCP.Endpoint,
		},
		A2A: integration.Endpoint{
			AutoGenerate: cfg.A2A.Endpoint == "",
			Endpoint:     cfg.A2A.Endpoint,
		},
		Webhooks: integration.Webhooks{
			AutoGenerate: cfg.Webhooks.Endpoint == "",
			Endpoint:     cfg.Webhooks.Endpoint,
		},
	}
	if len(cfg.Webhooks.Events) > 0 {
		out.Webhooks.Events = append([]string(nil), cfg.Webhooks.Events...)
	}
	return out
}

func ap2FromWire(cfg *AP2) integration.AP2Config {
	if cfg == nil {
		return integration.AP2Config{}
	}
	return integration.AP2Config{
		Enabled:              cfg.Enabled,
		MandateExpiryHours:   cfg.MandateExpiryHours,
		VerificationRequired: cfg.VerificationRequired,
	}
}
