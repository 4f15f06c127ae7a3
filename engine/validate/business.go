package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/agentbiz/onboard/engine/business"
	"github.com/agentbiz/onboard/engine/schema"
)

func validateIdentity(c *collector, cfg *business.Config) {
	name := strings.TrimSpace(cfg.Name)
	nameLimit := schema.LimitFor(schema.LimitBusinessNameLength)
	if name == "" {
		c.add("business name is required")
	} else if utf8.RuneCountInString(name) > int(nameLimit.Max) {
		c.addf("business name must be at most %d characters", int(nameLimit.Max))
	}
	if !schema.IsBusinessType(cfg.Type) {
		c.addf("invalid business type: %q", cfg.Type)
	}
	descLimit := schema.LimitFor(schema.LimitBusinessDescriptionLength)
	if utf8.RuneCountInString(cfg.Description) > int(descLimit.Max) {
		c.addf("business description must be at most %d characters", int(descLimit.Max))
	}
	if cfg.Website != "" && !isHTTPURL(cfg.Website) {
		c.add("business website must be an absolute http(s) URL")
	}
	if cfg.Capacity != nil && *cfg.Capacity <= 0 {
		c.add("business capacity must be a positive integer")
	}
}

func validateLocation(c *collector, loc *business.Location) {
	if strings.TrimSpace(loc.Address) == "" {
		c.add("location address is required")
	}
	if strings.TrimSpace(loc.City) == "" {
		c.add("location city is required")
	}
	if strings.TrimSpace(loc.State) == "" {
		c.add("location state is required")
	}
	if !schema.IsCountryCode(loc.Country) {
		c.addf("invalid location country code: %q", loc.Country)
	}
	if strings.TrimSpace(loc.Timezone) == "" {
		c.add("location timezone is required")
	}
	if loc.Coordinates != nil {
		lat := schema.LimitFor(schema.LimitLatitude)
		lon := schema.LimitFor(schema.LimitLongitude)
		if !lat.Contains(loc.Coordinates.Latitude) {
			c.addf("location latitude must be between %g and %g", lat.Min, lat.Max)
		}
		if !lon.Contains(loc.Coordinates.Longitude) {
			c.addf("location longitude must be between %g and %g", lon.Min, lon.Max)
		}
	}
}

func validateContact(c *collector, contact *business.ContactInfo) {
	if contact.Email == "" {
		c.add("contact email is required")
	} else if !schema.EmailPattern.MatchString(contact.Email) {
		c.addf("invalid contact email format: %q", contact.Email)
	}
	if contact.Phone != "" && !schema.PhonePattern.MatchString(contact.Phone) {
		c.addf("invalid contact phone format: %q", contact.Phone)
	}
	if contact.SecondaryEmail != "" && !schema.EmailPattern.MatchString(contact.SecondaryEmail) {
		c.addf("invalid secondary email format: %q", contact.SecondaryEmail)
	}
}
