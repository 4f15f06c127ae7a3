package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/agentbiz/onboard/engine/schema"
	"github.com/agentbiz/onboard/engine/service"
)

func validateServices(c *collector, services []service.Config) {
	countLimit := schema.LimitFor(schema.LimitServiceCount)
	if len(services) < int(countLimit.Min) {
		c.add("at least one service is required")
		return
	}
	if len(services) > int(countLimit.Max) {
		c.addf("at most %d services are allowed", int(countLimit.Max))
	}
	// Duplicate ids are reported against the first occurrence, tracked in a
	// single linear pass.
	seen := make(map[string]int, len(services))
	for idx := range services {
		svc := &services[idx]
		validateServiceID(c, idx, svc.ServiceID, seen)
		validateServiceBasics(c, idx, svc)
		validateWorkflow(c, idx, &svc.Workflow)
		validateParameters(c, idx, svc.Parameters)
		validateAvailability(c, idx, &svc.Availability)
		validateCancellation(c, idx, &svc.Cancellation)
		validatePayment(c, idx, &svc.Payment)
		validatePolicies(c, idx, &svc.Policies)
	}
}

func validateServiceID(c *collector, idx int, id string, seen map[string]int) {
	idLimit := schema.LimitFor(schema.LimitServiceIDLength)
	switch {
	case id == "":
		c.addf("service[%d] id is required", idx)
		return
	case utf8.RuneCountInString(id) > int(idLimit.Max):
		c.addf("service[%d] id must be at most %d characters", idx, int(idLimit.Max))
	case !schema.ServiceIDPattern.MatchString(id):
		c.addf("service[%d] id %q must contain only lowercase letters, digits, and underscores", idx, id)
	}
	if firstIdx, dup := seen[id]; dup {
		c.addf("service[%d] id %q duplicates service[%d]", idx, id, firstIdx)
		return
	}
	seen[id] = idx
}

func validateServiceBasics(c *collector, idx int, svc *service.Config) {
	if strings.TrimSpace(svc.Name) == "" {
		c.addf("service[%d] name is required", idx)
	}
	if strings.TrimSpace(svc.Description) == "" {
		c.addf("service[%d] description is required", idx)
	}
	if strings.TrimSpace(svc.Category) == "" {
		c.addf("service[%d] category is required", idx)
	}
}

func validateWorkflow(c *collector, idx int, wf *service.Workflow) {
	if !schema.IsWorkflowPattern(wf.Pattern) {
		c.addf("service[%d] workflow pattern %q is not recognized", idx, wf.Pattern)
	}
	stepLimit := schema.LimitFor(schema.LimitWorkflowSteps)
	if len(wf.Steps) > int(stepLimit.Max) {
		c.addf("service[%d] workflow has too many steps (max %d)", idx, int(stepLimit.Max))
	}
	timeout := schema.LimitFor(schema.LimitStepTimeoutMinutes)
	retries := schema.LimitFor(schema.LimitStepRetryAttempts)
	for stepIdx := range wf.Steps {
		step := &wf.Steps[stepIdx]
		if strings.TrimSpace(step.Name) == "" {
			c.addf("service[%d] workflow step[%d] name is required", idx, stepIdx)
		}
		if step.TimeoutMinutes != nil && !timeout.Contains(float64(*step.TimeoutMinutes)) {
			c.addf("service[%d] workflow step[%d] timeout must be between %d and %d minutes",
				idx, stepIdx, int(timeout.Min), int(timeout.Max))
		}
		if step.RetryAttempts != nil && !retries.Contains(float64(*step.RetryAttempts)) {
			c.addf("service[%d] workflow step[%d] retry attempts must be between %d and %d",
				idx, stepIdx, int(retries.Min), int(retries.Max))
		}
	}
}

func validateAvailability(c *collector, idx int, av *service.Availability) {
	cache := schema.LimitFor(schema.LimitCacheTimeoutSeconds)
	if av.CacheTimeout != nil && !cache.Contains(float64(*av.CacheTimeout)) {
		c.addf("service[%d] availability cache timeout must be between %d and %d seconds",
			idx, int(cache.Min), int(cache.Max))
	}
	advance := schema.LimitFor(schema.LimitAdvanceBookingDays)
	if av.AdvanceBookingDays != nil && !advance.Contains(float64(*av.AdvanceBookingDays)) {
		c.addf("service[%d] availability advance booking must be between %d and %d days",
			idx, int(advance.Min), int(advance.Max))
	}
	if av.Endpoint != "" && !isHTTPURL(av.Endpoint) {
		c.addf("service[%d] availability endpoint must be an absolute http(s) URL", idx)
	}
}

func validateCancellation(c *collector, idx int, policy *service.CancellationPolicy) {
	if !schema.IsCancellationType(policy.Type) {
		c.addf("service[%d] cancellation policy type %q is not recognized", idx, policy.Type)
	}
	free := schema.LimitFor(schema.LimitFreeCancellationHours)
	if !free.Contains(float64(policy.FreeCancellationHours)) {
		c.addf("service[%d] free cancellation hours must be between %d and %d",
			idx, int(free.Min), int(free.Max))
	}
	penalty := schema.LimitFor(schema.LimitPenaltyPercentage)
	if !penalty.Contains(policy.PenaltyPercentage) {
		c.addf("service[%d] cancellation penalty percentage must be between %d and %d",
			idx, int(penalty.Min), int(penalty.Max))
	}
	desc := schema.LimitFor(schema.LimitCancellationDescription)
	descLen := utf8.RuneCountInString(policy.Description)
	if descLen < int(desc.Min) || descLen > int(desc.Max) {
		c.addf("service[%d] cancellation description must be between %d and %d characters",
			idx, int(desc.Min), int(desc.Max))
	}
}

func validatePayment(c *collector, idx int, payment *service.PaymentConfig) {
	if len(payment.Methods) == 0 {
		c.addf("service[%d] must accept at least one payment method", idx)
	}
	for _, method := range payment.Methods {
		if !schema.IsPaymentMethod(method) {
			c.addf("service[%d] payment method %q is not recognized", idx, method)
		}
	}
	if !schema.IsPaymentTiming(payment.Timing) {
		c.addf("service[%d] payment timing %q is not recognized", idx, payment.Timing)
	}
	if payment.DepositRequired {
		deposit := schema.LimitFor(schema.LimitDepositPercentage)
		if payment.DepositPercentage == nil {
			c.addf("service[%d] deposit percentage is required when a deposit is required", idx)
		} else if !deposit.Contains(*payment.DepositPercentage) {
			c.addf("service[%d] deposit percentage must be between %d and %d",
				idx, int(deposit.Min), int(deposit.Max))
		}
	}
}

func validatePolicies(c *collector, idx int, policies *service.Policies) {
	if policies.ModificationFee < 0 {
		c.addf("service[%d] modification fee cannot be negative", idx)
	}
	if policies.NoShowPenalty < 0 {
		c.addf("service[%d] no-show penalty cannot be negative", idx)
	}
}
