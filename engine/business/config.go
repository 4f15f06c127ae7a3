package business

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/mohae/deepcopy"

	"github.com/agentbiz/onboard/engine/integration"
	"github.com/agentbiz/onboard/engine/schema"
	"github.com/agentbiz/onboard/engine/service"
)

// Config is the root aggregate describing one business and its offered
// services. It is the editable in-memory model an onboarding session mutates
// field by field; engine/validate checks it and engine/wire converts it to the
// registration payload. The engine never retains or mutates a caller's Config.
type Config struct {
	Name        string                `yaml:"name"                  json:"name"`
	Type        string                `yaml:"businessType"          json:"businessType"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Website     string                `yaml:"website,omitempty"     json:"website,omitempty"`
	Capacity    *int                  `yaml:"capacity,omitempty"    json:"capacity,omitempty"`
	Location    Location              `yaml:"location"              json:"location"`
	Contact     ContactInfo           `yaml:"contact"               json:"contact"`
	Services    []service.Config      `yaml:"services"              json:"services"`
	Integration integration.Config    `yaml:"integration"           json:"integration"`
	AP2         integration.AP2Config `yaml:"ap2"                   json:"ap2"`
}

// Location is the physical address and timezone of the business.
type Location struct {
	Address     string       `yaml:"address"               json:"address"`
	City        string       `yaml:"city"                  json:"city"`
	State       string       `yaml:"state"                 json:"state"`
	PostalCode  string       `yaml:"postalCode"            json:"postalCode"`
	Country     string       `yaml:"country"               json:"country"`
	Timezone    string       `yaml:"timezone"              json:"timezone"`
	Coordinates *Coordinates `yaml:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// Coordinates is an optional geographic point for the location.
type Coordinates struct {
	Latitude  float64 `yaml:"latitude"  json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// ContactInfo is how the registration service reaches the business.
type ContactInfo struct {
	Email          string `yaml:"email"                    json:"email"`
	Phone          string `yaml:"phone,omitempty"          json:"phone,omitempty"`
	SecondaryEmail string `yaml:"secondaryEmail,omitempty" json:"secondaryEmail,omitempty"`
	BusinessHours  string `yaml:"businessHours,omitempty"  json:"businessHours,omitempty"`
}

// New returns a Config seeded with schema defaults for a fresh onboarding
// session: one empty service slot and auto-generated integrations.
func New() *Config {
	cfg := &Config{
		Type:     string(schema.BusinessOther),
		Services: []service.Config{{}},
	}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills schema defaults for optional fields left unset, without
// overriding anything the caller already populated.
func (c *Config) SetDefaults() {
	if c.Type == "" {
		c.Type = string(schema.BusinessOther)
	}
	c.Integration.SetDefaults()
	if c.AP2.Enabled && c.AP2.MandateExpiryHours == 0 {
		c.AP2.MandateExpiryHours = int(schema.LimitFor(schema.LimitMandateExpiryHours).Default)
	}
	for i := range c.Services {
		c.Services[i].SetDefaults()
	}
}

// Clone returns a deep copy so callers can snapshot a draft before mutating.
func (c *Config) Clone() (*Config, error) {
	if c == nil {
		return nil, nil
	}
	copied, ok := deepcopy.Copy(c).(*Config)
	if !ok {
		return nil, fmt.Errorf("failed to copy business config")
	}
	return copied, nil
}

// AsMap converts the configuration to a generic map for host layers that do
// not work with the typed model.
func (c *Config) AsMap() (map[string]any, error) {
	bytes, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal business config: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(bytes, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business config to map: %w", err)
	}
	return m, nil
}

// FromMap decodes a generic map into a Config.
func FromMap(data any) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("failed to decode business config: %w", err)
	}
	return &cfg, nil
}
