package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbiz/onboard/engine/service"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestValidateParameters(t *testing.T) {
	t.Run("Should require at least one parameter per service", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters = nil
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] must declare at least one parameter")
	})

	t.Run("Should cap parameters at fifty", func(t *testing.T) {
		cfg := validConfig()
		for i := 0; i < 50; i++ {
			cfg.Services[0].Parameters = append(cfg.Services[0].Parameters, service.Parameter{
				Name:        "extra_" + strings.Repeat("x", i+1),
				Type:        "string",
				Description: "Extra parameter",
			})
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] declares too many parameters (max 50)")
	})

	t.Run("Should reject malformed names and unknown types", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters = append(cfg.Services[0].Parameters, service.Parameter{
			Name:        "2fast",
			Type:        "float",
			Description: "Speed",
		})
		result := Validate(cfg)
		assert.NotEmpty(t, errorsContaining(result, `name "2fast"`))
		assert.Contains(t, result.Errors, `service[0] parameter[1] type "float" is not recognized`)
	})

	t.Run("Should report duplicate names against the first occurrence within a service", func(t *testing.T) {
		cfg := validConfig()
		dup := cfg.Services[0].Parameters[0]
		cfg.Services[0].Parameters = append(cfg.Services[0].Parameters, dup)
		result := Validate(cfg)
		dups := errorsContaining(result, "duplicates parameter")
		require.Len(t, dups, 1)
		assert.Equal(t, `service[0] parameter[1] name "check_in_date" duplicates parameter[0]`, dups[0])
	})

	t.Run("Should reset the name scope between services", func(t *testing.T) {
		cfg := validConfig()
		second := roomBookingService()
		second.ServiceID = "cabin_booking"
		cfg.Services = append(cfg.Services, second)
		result := Validate(cfg)
		assert.Empty(t, errorsContaining(result, "duplicates parameter"))
		assert.True(t, result.Valid)
	})

	t.Run("Should require a description within bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Description = " "
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] parameter[0] description is required")

		cfg.Services[0].Parameters[0].Description = strings.Repeat("d", 501)
		result = Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] parameter[0] description must be at most 500 characters")
	})

	t.Run("Should require defaults to match the declared type", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Type = "integer"
		cfg.Services[0].Parameters[0].Default = "two"
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			`service[0] parameter[0] default value does not match declared type "integer"`)

		cfg.Services[0].Parameters[0].Default = float64(2)
		result = Validate(cfg)
		assert.Empty(t, errorsContaining(result, "default value"))

		cfg.Services[0].Parameters[0].Default = 2.5
		result = Validate(cfg)
		assert.Contains(t, result.Errors,
			`service[0] parameter[0] default value does not match declared type "integer"`)
	})
}

func TestValidateConstraints(t *testing.T) {
	t.Run("Should reject string minLength above maxLength and accept the swap", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Constraints = &service.Constraints{
			MinLength: intPtr(10),
			MaxLength: intPtr(5),
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] parameter[0] constraint minLength cannot exceed maxLength")

		cfg.Services[0].Parameters[0].Constraints = &service.Constraints{
			MinLength: intPtr(5),
			MaxLength: intPtr(10),
		}
		assert.True(t, Validate(cfg).Valid)
	})

	t.Run("Should reject an uncompilable string pattern", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Constraints = &service.Constraints{Pattern: "[unclosed"}
		result := Validate(cfg)
		assert.NotEmpty(t, errorsContaining(result, "not a valid regular expression"))
	})

	t.Run("Should reject numeric minimum above maximum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Type = "number"
		cfg.Services[0].Parameters[0].Constraints = &service.Constraints{
			Minimum: floatPtr(10),
			Maximum: floatPtr(1),
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] parameter[0] constraint minimum cannot exceed maximum")
	})

	t.Run("Should reject array minItems above maxItems", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Type = "array"
		cfg.Services[0].Parameters[0].Constraints = &service.Constraints{
			MinItems: intPtr(4),
			MaxItems: intPtr(2),
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors,
			"service[0] parameter[0] constraint minItems cannot exceed maxItems")
	})

	t.Run("Should ignore constraints meaningless for the declared type", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Type = "boolean"
		cfg.Services[0].Parameters[0].Constraints = &service.Constraints{
			MinLength: intPtr(10),
			MaxLength: intPtr(5),
		}
		assert.True(t, Validate(cfg).Valid)
	})
}

func TestValidatePricing(t *testing.T) {
	t.Run("Should check rate card bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Pricing = &service.Pricing{
			BaseRate:   -1,
			Currency:   "US",
			TaxRate:    1.5,
			ServiceFee: -2,
		}
		result := Validate(cfg)
		assert.Contains(t, result.Errors, "service[0] parameter[0] pricing base rate cannot be negative")
		assert.Contains(t, result.Errors, "service[0] parameter[0] pricing currency must be a 3-letter code")
		assert.Contains(t, result.Errors, "service[0] parameter[0] pricing tax rate must be between 0 and 1")
		assert.Contains(t, result.Errors, "service[0] parameter[0] pricing service fee cannot be negative")
	})

	t.Run("Should accept a complete rate card", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services[0].Parameters[0].Pricing = &service.Pricing{
			BaseRate:      120,
			Currency:      "USD",
			TaxRate:       0.0825,
			ServiceFee:    10,
			MinimumCharge: floatPtr(50),
		}
		assert.True(t, Validate(cfg).Valid)
	})
}
