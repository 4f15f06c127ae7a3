package integration

// Config groups the three independent protocol integrations a business can
// expose to booking agents. Each sub-config either auto-generates its endpoint
// downstream or carries an explicit one.
type Config struct {
	MCP      Endpoint `yaml:"mcp"      json:"mcp"`
	A2A      Endpoint `yaml:"a2a"      json:"a2a"`
	Webhooks Webhooks `yaml:"webhooks" json:"webhooks"`
}

// Endpoint is a single protocol endpoint. When AutoGenerate is true the
// Endpoint field is ignored and the registration service synthesizes one.
type Endpoint struct {
	AutoGenerate bool   `yaml:"autoGenerate"       json:"autoGenerate"`
	Endpoint     string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
}

// Webhooks extends Endpoint with the event types to deliver.
type Webhooks struct {
	AutoGenerate bool     `yaml:"autoGenerate"       json:"autoGenerate"`
	Endpoint     string   `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	Events       []string `yaml:"events,omitempty"   json:"events,omitempty"`
}

// AP2Config holds the autonomous-payment (AP2 mandate) settings. The whole
// block is inert while Enabled is false.
type AP2Config struct {
	Enabled              bool `yaml:"enabled"              json:"enabled"`
	MandateExpiryHours   int  `yaml:"mandateExpiryHours"   json:"mandateExpiryHours"`
	VerificationRequired bool `yaml:"verificationRequired" json:"verificationRequired"`
}

// SetDefaults marks endpoint-less integrations auto-generated, the safe
// starting point for a new onboarding session. An explicit endpoint is never
// clobbered.
func (c *Config) SetDefaults() {
	if c.MCP.Endpoint == "" {
		c.MCP.AutoGenerate = true
	}
	if c.A2A.Endpoint == "" {
		c.A2A.AutoGenerate = true
	}
	if c.Webhooks.Endpoint == "" {
		c.Webhooks.AutoGenerate = true
	}
}
