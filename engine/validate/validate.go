// Package validate walks a business configuration and reports every rule
// violation as a human-readable message. Validation never short-circuits and
// never mutates its input: the caller gets the full problem list in one pass.
package validate

import (
	"github.com/agentbiz/onboard/engine/business"
)

// Validate checks cfg against the domain schema and the cross-field rules of
// the registration contract. It always returns a Result; malformed-but-typed
// input produces violations, never a panic.
func Validate(cfg *business.Config) *Result {
	c := &collector{}
	if cfg == nil {
		c.add("business configuration is required")
		return c.result()
	}
	validateIdentity(c, cfg)
	validateLocation(c, &cfg.Location)
	validateContact(c, &cfg.Contact)
	validateServices(c, cfg.Services)
	validateIntegration(c, &cfg.Integration)
	validateAP2(c, &cfg.AP2)
	return c.result()
}
