package validate

import (
	"strings"

	"github.com/agentbiz/onboard/engine/integration"
	"github.com/agentbiz/onboard/engine/schema"
)

func validateIntegration(c *collector, cfg *integration.Config) {
	if !cfg.MCP.AutoGenerate {
		switch {
		case cfg.MCP.Endpoint == "":
			c.add("mcp endpoint is required when autoGenerate is false")
		case !isHTTPURL(cfg.MCP.Endpoint):
			c.add("mcp endpoint must be an absolute http(s) URL")
		case !strings.HasSuffix(cfg.MCP.Endpoint, "/mcp"):
			c.add("mcp endpoint must end with /mcp")
		}
	}
	if !cfg.A2A.AutoGenerate {
		switch {
		case cfg.A2A.Endpoint == "":
			c.add("a2a endpoint is required when autoGenerate is false")
		case !isHTTPURL(cfg.A2A.Endpoint):
			c.add("a2a endpoint must be an absolute http(s) URL")
		case !strings.Contains(cfg.A2A.Endpoint, "/.well-known/agent.json"):
			c.add("a2a endpoint must serve /.well-known/agent.json")
		}
	}
	if !cfg.Webhooks.AutoGenerate {
		switch {
		case cfg.Webhooks.Endpoint == "":
			c.add("webhook endpoint is required when autoGenerate is false")
		case !isHTTPURL(cfg.Webhooks.Endpoint):
			c.add("webhook endpoint must be an absolute http(s) URL")
		}
	}
	for _, event := range cfg.Webhooks.Events {
		if !schema.IsWebhookEvent(event) {
			c.addf("webhook event %q is not recognized", event)
		}
	}
}

func validateAP2(c *collector, cfg *integration.AP2Config) {
	if !cfg.Enabled {
		return
	}
	expiry := schema.LimitFor(schema.LimitMandateExpiryHours)
	if !expiry.Contains(float64(cfg.MandateExpiryHours)) {
		c.addf("ap2 mandate expiry must be between %d and %d hours",
			int(expiry.Min), int(expiry.Max))
	}
}
