package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agentbiz/onboard/engine/schema"
	"github.com/agentbiz/onboard/engine/service"
)

func validateParameters(c *collector, svcIdx int, params []service.Parameter) {
	countLimit := schema.LimitFor(schema.LimitParameterCount)
	if len(params) < int(countLimit.Min) {
		c.addf("service[%d] must declare at least one parameter", svcIdx)
		return
	}
	if len(params) > int(countLimit.Max) {
		c.addf("service[%d] declares too many parameters (max %d)", svcIdx, int(countLimit.Max))
	}
	// Name uniqueness is scoped to the service; the seen set resets here.
	seen := make(map[string]int, len(params))
	for idx := range params {
		validateParameter(c, svcIdx, idx, &params[idx], seen)
	}
}

func validateParameter(c *collector, svcIdx, idx int, param *service.Parameter, seen map[string]int) {
	if param.Name == "" {
		c.addf("service[%d] parameter[%d] name is required", svcIdx, idx)
	} else if !schema.ParameterNamePattern.MatchString(param.Name) {
		c.addf("service[%d] parameter[%d] name %q must start with a lowercase letter or underscore",
			svcIdx, idx, param.Name)
	}
	if param.Name != "" {
		if firstIdx, dup := seen[param.Name]; dup {
			c.addf("service[%d] parameter[%d] name %q duplicates parameter[%d]",
				svcIdx, idx, param.Name, firstIdx)
		} else {
			seen[param.Name] = idx
		}
	}
	if !schema.IsParameterType(param.Type) {
		c.addf("service[%d] parameter[%d] type %q is not recognized", svcIdx, idx, param.Type)
	}
	descLimit := schema.LimitFor(schema.LimitParameterDescription)
	descLen := utf8.RuneCountInString(strings.TrimSpace(param.Description))
	if descLen < int(descLimit.Min) {
		c.addf("service[%d] parameter[%d] description is required", svcIdx, idx)
	} else if descLen > int(descLimit.Max) {
		c.addf("service[%d] parameter[%d] description must be at most %d characters",
			svcIdx, idx, int(descLimit.Max))
	}
	if param.Default != nil && schema.IsParameterType(param.Type) && !defaultMatchesType(param.Type, param.Default) {
		c.addf("service[%d] parameter[%d] default value does not match declared type %q",
			svcIdx, idx, param.Type)
	}
	if param.Constraints != nil {
		validateConstraints(c, svcIdx, idx, param.Type, param.Constraints)
	}
	if param.Pricing != nil {
		validatePricing(c, svcIdx, idx, param.Pricing)
	}
}

// defaultMatchesType accepts the value shapes a YAML or JSON decoder produces
// for each declared parameter type. Dates and times arrive as strings.
func defaultMatchesType(ptype string, value any) bool {
	switch schema.ParameterType(ptype) {
	case schema.ParamString, schema.ParamDate, schema.ParamDateTime, schema.ParamTime:
		_, ok := value.(string)
		return ok
	case schema.ParamInteger:
		switch n := value.(type) {
		case int, int64, uint64:
			return true
		case float64:
			return n == float64(int64(n))
		default:
			return false
		}
	case schema.ParamNumber:
		switch value.(type) {
		case int, int64, uint64, float64:
			return true
		default:
			return false
		}
	case schema.ParamBoolean:
		_, ok := value.(bool)
		return ok
	case schema.ParamArray:
		switch value.(type) {
		case []any, []string:
			return true
		default:
			return false
		}
	case schema.ParamObject:
		switch value.(type) {
		case map[string]any, map[any]any:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// validateConstraints dispatches on the declared parameter type; each branch
// checks only the constraint fields meaningful to that type.
func validateConstraints(c *collector, svcIdx, idx int, ptype string, cons *service.Constraints) {
	switch schema.ParameterType(ptype) {
	case schema.ParamInteger, schema.ParamNumber:
		validateNumericConstraints(c, svcIdx, idx, cons)
	case schema.ParamString:
		validateStringConstraints(c, svcIdx, idx, cons)
	case schema.ParamArray:
		validateArrayConstraints(c, svcIdx, idx, cons)
	default:
		// boolean/object/date/datetime/time carry no checkable constraints.
	}
}

func validateNumericConstraints(c *collector, svcIdx, idx int, cons *service.Constraints) {
	if cons.Minimum != nil && cons.Maximum != nil && *cons.Minimum > *cons.Maximum {
		c.addf("service[%d] parameter[%d] constraint minimum cannot exceed maximum", svcIdx, idx)
	}
}

func validateStringConstraints(c *collector, svcIdx, idx int, cons *service.Constraints) {
	if cons.MinLength != nil && cons.MaxLength != nil && *cons.MinLength > *cons.MaxLength {
		c.addf("service[%d] parameter[%d] constraint minLength cannot exceed maxLength", svcIdx, idx)
	}
	if cons.Pattern != "" {
		if _, err := regexp.Compile(cons.Pattern); err != nil {
			c.addf("service[%d] parameter[%d] constraint pattern %q is not a valid regular expression",
				svcIdx, idx, cons.Pattern)
		}
	}
}

func validateArrayConstraints(c *collector, svcIdx, idx int, cons *service.Constraints) {
	if cons.MinItems != nil && cons.MaxItems != nil && *cons.MinItems > *cons.MaxItems {
		c.addf("service[%d] parameter[%d] constraint minItems cannot exceed maxItems", svcIdx, idx)
	}
}

func validatePricing(c *collector, svcIdx, idx int, pricing *service.Pricing) {
	if pricing.BaseRate < 0 {
		c.addf("service[%d] parameter[%d] pricing base rate cannot be negative", svcIdx, idx)
	}
	if utf8.RuneCountInString(pricing.Currency) != 3 {
		c.addf("service[%d] parameter[%d] pricing currency must be a 3-letter code", svcIdx, idx)
	}
	taxLimit := schema.LimitFor(schema.LimitTaxRate)
	if !taxLimit.Contains(pricing.TaxRate) {
		c.addf("service[%d] parameter[%d] pricing tax rate must be between %g and %g",
			svcIdx, idx, taxLimit.Min, taxLimit.Max)
	}
	if pricing.ServiceFee < 0 {
		c.addf("service[%d] parameter[%d] pricing service fee cannot be negative", svcIdx, idx)
	}
	if pricing.MinimumCharge != nil && *pricing.MinimumCharge < 0 {
		c.addf("service[%d] parameter[%d] pricing minimum charge cannot be negative", svcIdx, idx)
	}
}
