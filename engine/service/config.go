package service

import (
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/agentbiz/onboard/engine/schema"
)

// Config describes one bookable service offered by a business. The yaml/json
// tags follow the editable model's camelCase convention; the wire schema uses
// its own snake_case shape (see engine/wire).
type Config struct {
	ServiceID    string             `yaml:"serviceId"            json:"serviceId"`
	Name         string             `yaml:"name"                 json:"name"`
	Description  string             `yaml:"description"          json:"description"`
	Category     string             `yaml:"category"             json:"category"`
	Workflow     Workflow           `yaml:"workflow"             json:"workflow"`
	Parameters   []Parameter        `yaml:"parameters"           json:"parameters"`
	Availability Availability       `yaml:"availability"         json:"availability"`
	Cancellation CancellationPolicy `yaml:"cancellationPolicy"   json:"cancellationPolicy"`
	Payment      PaymentConfig      `yaml:"payment"              json:"payment"`
	Policies     Policies           `yaml:"policies"             json:"policies"`
}

// Workflow is the execution pattern for a service plus its ordered steps.
type Workflow struct {
	Pattern string         `yaml:"pattern"         json:"pattern"`
	Steps   []WorkflowStep `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// WorkflowStep is a single named stage of a service workflow.
type WorkflowStep struct {
	Name           string `yaml:"name"                     json:"name"`
	Description    string `yaml:"description,omitempty"    json:"description,omitempty"`
	TimeoutMinutes *int   `yaml:"timeoutMinutes,omitempty" json:"timeoutMinutes,omitempty"`
	RetryAttempts  *int   `yaml:"retryAttempts,omitempty"  json:"retryAttempts,omitempty"`
}

// Parameter is one input the service collects from a booking agent.
type Parameter struct {
	Name        string       `yaml:"name"                  json:"name"`
	Type        string       `yaml:"type"                  json:"type"`
	Description string       `yaml:"description"           json:"description"`
	Required    bool         `yaml:"required"              json:"required"`
	Default     any          `yaml:"default,omitempty"     json:"default,omitempty"`
	Constraints *Constraints `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Pricing     *Pricing     `yaml:"pricing,omitempty"     json:"pricing,omitempty"`
}

// Constraints carries the type-specific validation rules of a parameter.
// Which fields are legal depends on the parameter's declared type; see
// engine/validate for the per-type legality rules.
type Constraints struct {
	MinLength *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Minimum   *float64 `yaml:"minimum,omitempty"   json:"minimum,omitempty"`
	Maximum   *float64 `yaml:"maximum,omitempty"   json:"maximum,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"   json:"pattern,omitempty"`
	Enum      []string `yaml:"enum,omitempty"      json:"enum,omitempty"`
	Format    string   `yaml:"format,omitempty"    json:"format,omitempty"`
	MinItems  *int     `yaml:"minItems,omitempty"  json:"minItems,omitempty"`
	MaxItems  *int     `yaml:"maxItems,omitempty"  json:"maxItems,omitempty"`
}

// Pricing attaches a rate card to a parameter (for parameters that price the
// booking, e.g. room type or party size).
type Pricing struct {
	BaseRate      float64  `yaml:"baseRate"                json:"baseRate"`
	Currency      string   `yaml:"currency"                json:"currency"`
	TaxRate       float64  `yaml:"taxRate"                 json:"taxRate"`
	ServiceFee    float64  `yaml:"serviceFee"              json:"serviceFee"`
	MinimumCharge *float64 `yaml:"minimumCharge,omitempty" json:"minimumCharge,omitempty"`
}

// Availability controls how booking agents query open slots.
type Availability struct {
	RealTime           bool   `yaml:"realTime"                     json:"realTime"`
	CacheTimeout       *int   `yaml:"cacheTimeout,omitempty"       json:"cacheTimeout,omitempty"`
	AdvanceBookingDays *int   `yaml:"advanceBookingDays,omitempty" json:"advanceBookingDays,omitempty"`
	Endpoint           string `yaml:"endpoint,omitempty"           json:"endpoint,omitempty"`
}

// CancellationPolicy is the service's cancellation tier and its terms.
type CancellationPolicy struct {
	Type                  string  `yaml:"type"                  json:"type"`
	FreeCancellationHours int     `yaml:"freeCancellationHours" json:"freeCancellationHours"`
	PenaltyPercentage     float64 `yaml:"penaltyPercentage"     json:"penaltyPercentage"`
	Description           string  `yaml:"description"           json:"description"`
}

// PaymentConfig lists accepted payment methods and collection timing.
type PaymentConfig struct {
	Methods           []string `yaml:"methods"                     json:"methods"`
	Timing            string   `yaml:"timing"                      json:"timing"`
	DepositRequired   bool     `yaml:"depositRequired"             json:"depositRequired"`
	DepositPercentage *float64 `yaml:"depositPercentage,omitempty" json:"depositPercentage,omitempty"`
}

// Policies holds the flat service fees applied outside the cancellation tier.
type Policies struct {
	ModificationFee float64 `yaml:"modificationFee" json:"modificationFee"`
	NoShowPenalty   float64 `yaml:"noShowPenalty"   json:"noShowPenalty"`
}

// SetDefaults seeds schema defaults for optional fields a fresh onboarding
// session leaves unset. Existing values are never overridden.
func (c *Config) SetDefaults() {
	if c.Workflow.Pattern == "" {
		c.Workflow.Pattern = string(schema.WorkflowSequential)
	}
	if c.Availability.CacheTimeout == nil {
		v := int(schema.LimitFor(schema.LimitCacheTimeoutSeconds).Default)
		c.Availability.CacheTimeout = &v
	}
	if c.Availability.AdvanceBookingDays == nil {
		v := int(schema.LimitFor(schema.LimitAdvanceBookingDays).Default)
		c.Availability.AdvanceBookingDays = &v
	}
	if c.Cancellation.Type == "" {
		c.Cancellation.Type = string(schema.CancellationFlexible)
	}
	if c.Payment.Timing == "" {
		c.Payment.Timing = string(schema.TimingAtBooking)
	}
	for i := range c.Parameters {
		if p := c.Parameters[i].Pricing; p != nil && p.Currency == "" {
			p.Currency = schema.DefaultCurrency
		}
	}
}

// Clone returns a deep copy of the service configuration.
func (c *Config) Clone() (*Config, error) {
	if c == nil {
		return nil, nil
	}
	copied, ok := deepcopy.Copy(c).(*Config)
	if !ok {
		return nil, fmt.Errorf("failed to copy service config")
	}
	return copied, nil
}
