package wire

import (
	"github.com/agentbiz/onboard/engine/service"
)

// constraintField binds one editable-model constraint to its wire key. Both
// transform directions walk this table, so adding a constraint here keeps the
// round-trip property intact without touching either direction.
type constraintField struct {
	wireKey string
	get     func(c *service.Constraints) (any, bool)
	set     func(c *service.Constraints, v any)
}

var constraintFields = []constraintField{
	{
		wireKey: "min_length",
		get:     func(c *service.Constraints) (any, bool) { return intPtrValue(c.MinLength) },
		set:     func(c *service.Constraints, v any) { c.MinLength = toIntPtr(v) },
	},
	{
		wireKey: "max_length",
		get:     func(c *service.Constraints) (any, bool) { return intPtrValue(c.MaxLength) },
		set:     func(c *service.Constraints, v any) { c.MaxLength = toIntPtr(v) },
	},
	{
		wireKey: "minimum",
		get:     func(c *service.Constraints) (any, bool) { return floatPtrValue(c.Minimum) },
		set:     func(c *service.Constraints, v any) { c.Minimum = toFloatPtr(v) },
	},
	{
		wireKey: "maximum",
		get:     func(c *service.Constraints) (any, bool) { return floatPtrValue(c.Maximum) },
		set:     func(c *service.Constraints, v any) { c.Maximum = toFloatPtr(v) },
	},
	{
		wireKey: "pattern",
		get:     func(c *service.Constraints) (any, bool) { return c.Pattern, c.Pattern != "" },
		set:     func(c *service.Constraints, v any) { c.Pattern, _ = v.(string) },
	},
	{
		wireKey: "enum",
		get: func(c *service.Constraints) (any, bool) {
			if len(c.Enum) == 0 {
				return nil, false
			}
			return append([]string(nil), c.Enum...), true
		},
		set: func(c *service.Constraints, v any) { c.Enum = toStringSlice(v) },
	},
	{
		wireKey: "format",
		get:     func(c *service.Constraints) (any, bool) { return c.Format, c.Format != "" },
		set:     func(c *service.Constraints, v any) { c.Format, _ = v.(string) },
	},
	{
		wireKey: "min_items",
		get:     func(c *service.Constraints) (any, bool) { return intPtrValue(c.MinItems) },
		set:     func(c *service.Constraints, v any) { c.MinItems = toIntPtr(v) },
	},
	{
		wireKey: "max_items",
		get:     func(c *service.Constraints) (any, bool) { return intPtrValue(c.MaxItems) },
		set:     func(c *service.Constraints, v any) { c.MaxItems = toIntPtr(v) },
	},
}

// constraintsToWire flattens a constraints block into the wire map, omitting
// every absent field. A block with nothing set contributes no map at all.
func constraintsToWire(c *service.Constraints) map[string]any {
	if c == nil {
		return nil
	}
	out := make(map[string]any, len(constraintFields))
	for _, f := range constraintFields {
		if v, ok := f.get(c); ok {
			out[f.wireKey] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// constraintsFromWire rebuilds the editable constraints block from the wire
// map. Values may arrive as native Go types or as JSON-decoded float64/[]any.
func constraintsFromWire(m map[string]any) *service.Constraints {
	if len(m) == 0 {
		return nil
	}
	c := &service.Constraints{}
	for _, f := range constraintFields {
		if v, ok := m[f.wireKey]; ok {
			f.set(c, v)
		}
	}
	return c
}

func intPtrValue(p *int) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func floatPtrValue(p *float64) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func toIntPtr(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	default:
		return nil
	}
}

func toFloatPtr(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

func toStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}
