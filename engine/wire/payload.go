// Package wire converts between the editable business configuration and the
// snake_case payload the registration service accepts. The forward and
// reverse transforms share their field mapping so the round-trip property
// holds by construction.
package wire

// Payload is the normalized registration request. Key names and nesting are
// the contract with the remote service and must not drift.
type Payload struct {
	BusinessName string      `json:"business_name"`
	BusinessType string      `json:"business_type"`
	Description  string      `json:"description,omitempty"`
	Website      string      `json:"website,omitempty"`
	Capacity     *int        `json:"capacity,omitempty"`
	Slug         string      `json:"slug"`
	Location     Location    `json:"location"`
	Contact      Contact     `json:"contact"`
	Services     []Service   `json:"services"`
	Integration  Integration `json:"integration"`
	AP2          *AP2        `json:"ap2,omitempty"`
}

type Location struct {
	Address     string       `json:"address"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	PostalCode  string       `json:"postal_code"`
	Country     string       `json:"country"`
	Timezone    string       `json:"timezone"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Contact struct {
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	SecondaryEmail string `json:"secondary_email,omitempty"`
	BusinessHours  string `json:"business_hours,omitempty"`
}

type Service struct {
	ServiceID          string             `json:"service_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Category           string             `json:"category"`
	Workflow           Workflow           `json:"workflow"`
	Parameters         []Parameter        `json:"parameters"`
	Availability       Availability       `json:"availability"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`
	Payment            Payment            `json:"payment"`
	Policies           Policies           `json:"policies"`
}

type Workflow struct {
	Pattern string         `json:"pattern"`
	Steps   []WorkflowStep `json:"steps,omitempty"`
}

type WorkflowStep struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	TimeoutMinutes *int   `json:"timeout_minutes,omitempty"`
	RetryAttempts  *int   `json:"retry_attempts,omitempty"`
}

type Parameter struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Required    bool           `json:"required"`
	Default     any            `json:"default,omitempty"`
	Constraints map[string]any `json:"constraints,omitempty"`
	Pricing     *Pricing       `json:"pricing,omitempty"`
}

type Pricing struct {
	BaseRate      float64  `json:"base_rate"`
	Currency      string   `json:"currency"`
	TaxRate       float64  `json:"tax_rate"`
	ServiceFee    float64  `json:"service_fee"`
	MinimumCharge *float64 `json:"minimum_charge,omitempty"`
}

type Availability struct {
	RealTime           bool   `json:"real_time"`
	CacheTimeout       int    `json:"cache_timeout"`
	AdvanceBookingDays int    `json:"advance_booking_days"`
	Endpoint           string `json:"endpoint,omitempty"`
}

type CancellationPolicy struct {
	Type                  string  `json:"type"`
	FreeCancellationHours int     `json:"free_cancellation_hours"`
	PenaltyPercentage     float64 `json:"penalty_percentage"`
	Description           string  `json:"description"`
}

type Payment struct {
	Methods           []string `json:"methods"`
	Timing            string   `json:"timing"`
	DepositRequired   bool     `json:"deposit_required"`
	DepositPercentage *float64 `json:"deposit_percentage,omitempty"`
}

type Policies struct {
	ModificationFee float64 `json:"modification_fee"`
	NoShowPenalty   float64 `json:"no_show_penalty"`
}

// Integration carries only explicit endpoints; an auto-generated integration
// contributes nothing so the service knows to synthesize it.
type Integration struct {
	MCP      IntegrationEndpoint `json:"mcp"`
	A2A      IntegrationEndpoint `json:"a2a"`
	Webhooks WebhookIntegration  `json:"webhooks"`
}

type IntegrationEndpoint struct {
	Endpoint string `json:"endpoint,omitempty"`
}

type WebhookIntegration struct {
	Endpoint string   `json:"endpoint,omitempty"`
	Events   []string `json:"events,omitempty"`
}

// AP2 is present in the payload only when autonomous payments are enabled.
type AP2 struct {
	Enabled              bool `json:"enabled"`
	MandateExpiryHours   int  `json:"mandate_expiry_hours"`
	VerificationRequired bool `json:"verification_required"`
}
