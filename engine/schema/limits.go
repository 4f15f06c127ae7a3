package schema

import "fmt"

// Limit captures the numeric bounds and default for one configurable field.
// A Default of zero with HasDefault false means the field carries no default.
type Limit struct {
	Min        float64
	Max        float64
	Default    float64
	HasDefault bool
}

// Limit keys. Every bound used by validation or transformation lives in the
// limits table; changing a value here changes behavior everywhere.
const (
	LimitBusinessNameLength        = "business.name.length"
	LimitBusinessDescriptionLength = "business.description.length"
	LimitServiceCount              = "business.services.count"
	LimitServiceIDLength           = "service.id.length"
	LimitWorkflowSteps             = "service.workflow.steps"
	LimitStepTimeoutMinutes        = "service.workflow.step.timeoutMinutes"
	LimitStepRetryAttempts         = "service.workflow.step.retryAttempts"
	LimitParameterCount            = "service.parameters.count"
	LimitParameterDescription      = "service.parameter.description.length"
	LimitCacheTimeoutSeconds       = "service.availability.cacheTimeout"
	LimitAdvanceBookingDays        = "service.availability.advanceBookingDays"
	LimitFreeCancellationHours     = "service.cancellation.freeHours"
	LimitPenaltyPercentage         = "service.cancellation.penaltyPercentage"
	LimitCancellationDescription   = "service.cancellation.description.length"
	LimitDepositPercentage         = "service.payment.depositPercentage"
	LimitTaxRate                   = "service.pricing.taxRate"
	LimitMandateExpiryHours        = "ap2.mandateExpiryHours"
	LimitLatitude                  = "location.coordinates.latitude"
	LimitLongitude                 = "location.coordinates.longitude"
	LimitSlugLength                = "business.slug.length"
)

var limits = map[string]Limit{
	LimitBusinessNameLength:        {Min: 1, Max: 255},
	LimitBusinessDescriptionLength: {Min: 0, Max: 1000},
	LimitServiceCount:              {Min: 1, Max: 20},
	LimitServiceIDLength:           {Min: 1, Max: 100},
	LimitWorkflowSteps:             {Min: 0, Max: 10},
	LimitStepTimeoutMinutes:        {Min: 1, Max: 1440},
	LimitStepRetryAttempts:         {Min: 0, Max: 10},
	LimitParameterCount:            {Min: 1, Max: 50},
	LimitParameterDescription:      {Min: 1, Max: 500},
	LimitCacheTimeoutSeconds:       {Min: 0, Max: 3600, Default: 300, HasDefault: true},
	LimitAdvanceBookingDays:        {Min: 1, Max: 730, Default: 365, HasDefault: true},
	LimitFreeCancellationHours:     {Min: 0, Max: 168, Default: 24, HasDefault: true},
	LimitPenaltyPercentage:         {Min: 0, Max: 100, Default: 0, HasDefault: true},
	LimitCancellationDescription:   {Min: 10, Max: 500},
	LimitDepositPercentage:         {Min: 0, Max: 100, Default: 0, HasDefault: true},
	LimitTaxRate:                   {Min: 0, Max: 1, Default: 0, HasDefault: true},
	LimitMandateExpiryHours:        {Min: 1, Max: 168, Default: 24, HasDefault: true},
	LimitLatitude:                  {Min: -90, Max: 90},
	LimitLongitude:                 {Min: -180, Max: 180},
	LimitSlugLength:                {Min: 1, Max: 50},
}

// LimitFor returns the limit registered under key. An unknown key is a
// programming error, not a runtime condition, so it panics.
func LimitFor(key string) Limit {
	l, ok := limits[key]
	if !ok {
		panic(fmt.Sprintf("schema: no limit registered for key %q", key))
	}
	return l
}

// Contains reports whether v falls within the limit's inclusive range.
func (l Limit) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

// Default currency applied when a parameter declares pricing without one.
const DefaultCurrency = "USD"
