package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbiz/onboard/engine/business"
	"github.com/agentbiz/onboard/engine/integration"
	"github.com/agentbiz/onboard/engine/service"
)

func roomBookingService() service.Config {
	return service.Config{
		ServiceID:   "room_booking",
		Name:        "Room Booking",
		Description: "Book a room at the lodge",
		Category:    "lodging",
		Workflow:    service.Workflow{Pattern: "sequential"},
		Parameters: []service.Parameter{
			{
				Name:        "check_in_date",
				Type:        "string",
				Description: "Desired check-in date",
				Required:    true,
			},
		},
		Cancellation: service.CancellationPolicy{
			Type:                  "flexible",
			FreeCancellationHours: 24,
			Description:           "Refundable", // exactly 10 characters
		},
		Payment: service.PaymentConfig{
			Methods: []string{"credit_card"},
			Timing:  "at_booking",
		},
	}
}

func validConfig() *business.Config {
	return &business.Config{
		Name: "Zion Adventure Lodge",
		Type: "hospitality",
		Location: business.Location{
			Address:    "1 Canyon Road",
			City:       "Springdale",
			State:      "UT",
			PostalCode: "84767",
			Country:    "US",
			Timezone:   "America/Denver",
		},
		Contact:  business.ContactInfo{Email: "host@zionlodge.com"},
		Services: []service.Config{roomBookingService()},
		Integration: integration.Config{
			MCP:      integration.Endpoint{AutoGenerate: true},
			A2A:      integration.Endpoint{AutoGenerate: true},
			Webhooks: integration.Webhooks{AutoGenerate: true},
		},
	}
}

func errorsContaining(result *Result, substr string) []string {
	var matched []string
	for _, msg := range result.Errors {
		if strings.Contains(msg, substr) {
			matched = append(matched, msg)
		}
	}
	return matched
}

func TestValidate(t *testing.T) {
	t.Run("Should accept a complete single-service configuration", func(t *testing.T) {
		result := Validate(validConfig())
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("Should reject a nil configuration without panicking", func(t *testing.T) {
		result := Validate(nil)
		require.False(t, result.Valid)
		assert.Equal(t, []string{"business configuration is required"}, result.Errors)
	})

	t.Run("Should accumulate every violation in a single pass", func(t *testing.T) {
		cfg := validConfig()
		cfg.Name = ""
		cfg.Type = "food_truck"
		cfg.Contact.Email = "not-an-email"
		cfg.Location.Country = "USA"
		result := Validate(cfg)
		require.False(t, result.Valid)
		assert.GreaterOrEqual(t, len(result.Errors), 4)
		assert.Contains(t, result.Errors, "business name is required")
		assert.Contains(t, result.Errors, `invalid business type: "food_truck"`)
	})

	t.Run("Should not mutate the input configuration", func(t *testing.T) {
		cfg := validConfig()
		snapshot, err := cfg.Clone()
		require.NoError(t, err)
		Validate(cfg)
		assert.Equal(t, snapshot, cfg)
	})
}

func TestValidateIdentity(t *testing.T) {
	t.Run("Should enforce the name length bound", func(t *testing.T) {
		cfg := validConfig()
		cfg.Name = strings.Repeat("a", 256)
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "business name must be at most 255 characters")

		cfg.Name = strings.Repeat("a", 255)
		assert.True(t, Validate(cfg).Valid)
	})

	t.Run("Should require an absolute http(s) website when present", func(t *testing.T) {
		cfg := validConfig()
		cfg.Website = "zionlodge.com"
		assert.Contains(t, Validate(cfg).Errors, "business website must be an absolute http(s) URL")

		cfg.Website = "https://zionlodge.com"
		assert.True(t, Validate(cfg).Valid)
	})

	t.Run("Should require a positive capacity when present", func(t *testing.T) {
		cfg := validConfig()
		zero := 0
		cfg.Capacity = &zero
		assert.Contains(t, Validate(cfg).Errors, "business capacity must be a positive integer")

		ten := 10
		cfg.Capacity = &ten
		assert.True(t, Validate(cfg).Valid)
	})
}

func TestValidateLocation(t *testing.T) {
	t.Run("Should require address, city, state, and timezone", func(t *testing.T) {
		cfg := validConfig()
		cfg.Location = business.Location{Country: "US"}
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "location address is required")
		assert.Contains(t, result.Errors, "location city is required")
		assert.Contains(t, result.Errors, "location state is required")
		assert.Contains(t, result.Errors, "location timezone is required")
	})

	t.Run("Should bound coordinates when present", func(t *testing.T) {
		cfg := validConfig()
		cfg.Location.Coordinates = &business.Coordinates{Latitude: 91, Longitude: -181}
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "location latitude must be between -90 and 90")
		assert.Contains(t, result.Errors, "location longitude must be between -180 and 180")

		cfg.Location.Coordinates = &business.Coordinates{Latitude: 37.2, Longitude: -113.0}
		assert.True(t, Validate(cfg).Valid)
	})
}

func TestValidateServiceCollection(t *testing.T) {
	t.Run("Should require at least one service", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services = nil
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "at least one service is required")
	})

	t.Run("Should cap the service count at twenty", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services = nil
		for i := 0; i < 21; i++ {
			svc := roomBookingService()
			svc.ServiceID = svc.ServiceID + "_" + strings.Repeat("x", i+1)
			cfg.Services = append(cfg.Services, svc)
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "at most 20 services are allowed")
	})

	t.Run("Should report exactly one duplicate id error against the first occurrence", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services = append(cfg.Services, roomBookingService())
		result := Validate(cfg)
		dups := errorsContaining(result, "duplicates")
		require.Len(t, dups, 1)
		assert.Equal(t, `service[1] id "room_booking" duplicates service[0]`, dups[0])
	})

	t.Run("Should attribute later duplicates to the first occurrence", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services = append(cfg.Services, roomBookingService(), roomBookingService())
		result := Validate(cfg)
		dups := errorsContaining(result, "duplicates")
		require.Len(t, dups, 2)
		assert.Equal(t, `service[1] id "room_booking" duplicates service[0]`, dups[0])
		assert.Equal(t, `service[2] id "room_booking" duplicates service[0]`, dups[1])
	})

	t.Run("Should report nothing for distinct ids", func(t *testing.T) {
		cfg := validConfig()
		second := roomBookingService()
		second.ServiceID = "cabin_booking"
		cfg.Services = append(cfg.Services, second)
		result := Validate(cfg)
		assert.Empty(t, errorsContaining(result, "duplicates"))
		assert.True(t, result.Valid)
	})

	t.Run("Should reject malformed service ids", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].ServiceID = "Room-Booking"
		result := Validate(cfg)
		assert.NotEmpty(t, errorsContaining(result, "lowercase letters"))
	})
}

func TestValidateCancellation(t *testing.T) {
	t.Run("Should enforce penalty percentage bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Cancellation.PenaltyPercentage = 150
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] cancellation penalty percentage must be between 0 and 100")

		cfg.Services[0].Cancellation.PenaltyPercentage = 100
		assert.True(t, Validate(cfg).Valid)

		cfg.Services[0].Cancellation.PenaltyPercentage = 0
		assert.True(t, Validate(cfg).Valid)
	})

	t.Run("Should enforce the description length window", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Cancellation.Description = "too short"
		result := Validate(cfg)
		assert.NotEmpty(t, errorsContaining(result, "cancellation description"))

		cfg.Services[0].Cancellation.Description = "Refundable" // lower bound, 10 chars
		assert.True(t, Validate(cfg).Valid)
	})
}

func TestValidatePayment(t *testing.T) {
	t.Run("Should require at least one recognized method", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Payment.Methods = nil
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] must accept at least one payment method")

		cfg.Services[0].Payment.Methods = []string{"barter"}
		result = Validate(cfg)
		assert.Contains(t, result.Errors, `service[0] payment method "barter" is not recognized`)
	})

	t.Run("Should require a deposit percentage when a deposit is required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Payment.DepositRequired = true
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] deposit percentage is required when a deposit is required")

		pct := 120.0
		cfg.Services[0].Payment.DepositPercentage = &pct
		result = Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] deposit percentage must be between 0 and 100")

		pct = 25
		assert.True(t, Validate(cfg).Valid)
	})
}

func TestValidateWorkflow(t *testing.T) {
	t.Run("Should reject unknown patterns and bound step fields", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Workflow.Pattern = "fanout"
		timeout := 2000
		retries := 11
		cfg.Services[0].Workflow.Steps = []service.WorkflowStep{
			{Name: "confirm", TimeoutMinutes: &timeout, RetryAttempts: &retries},
			{Name: ""},
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors, `service[0] workflow pattern "fanout" is not recognized`)
		assert.Contains(t, result.Errors,
			"service[0] workflow step[0] timeout must be between 1 and 1440 minutes")
		assert.Contains(t, result.Errors,
			"service[0] workflow step[0] retry attempts must be between 0 and 10")
		assert.Contains(t, result.Errors, "service[0] workflow step[1] name is required")
	})

	t.Run("Should cap workflow steps at ten", func(t *testing.T) {
		cfg := validConfig()
		for i := 0; i < 11; i++ {
			cfg.Services[0].Workflow.Steps = append(cfg.Services[0].Workflow.Steps,
				service.WorkflowStep{Name: "step"})
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] workflow has too many steps (max 10)")
	})
}

func TestValidateAvailability(t *testing.T) {
	t.Run("Should bound cache timeout and advance booking", func(t *testing.T) {
		cfg := validConfig()
		cache := 7200
		advance := 0
		cfg.Services[0].Availability.CacheTimeout = &cache
		cfg.Services[0].Availability.AdvanceBookingDays = &advance
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] availability cache timeout must be between 0 and 3600 seconds")
		assert.Contains(t, result.Errors,
			"service[0] availability advance booking must be between 1 and 730 days")
	})

	t.Run("Should require an absolute override endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Availability.Endpoint = "availability.internal/check"
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] availability endpoint must be an absolute http(s) URL")

		cfg.Services[0].Availability.Endpoint = "https://availability.internal/check"
		assert.True(t, Validate(cfg).Valid)
	})
}

func TestValidatePolicies(t *testing.T) {
	t.Run("Should reject negative fees", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Policies.ModificationFee = -5
		cfg.Services[0].Policies.NoShowPenalty = -1
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] modification fee cannot be negative")
		assert.Contains(t, result.Errors, "service[0] no-show penalty cannot be negative")
	})
}
