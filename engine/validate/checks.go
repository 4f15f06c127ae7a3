package validate

import (
	"github.com/go-playground/validator/v10"
)

// Shared validator instance for format checks that go beyond the schema
// pattern tables. validator.Validate is safe for concurrent use.
var vd = validator.New()

// isHTTPURL reports whether s is an absolute http(s) URL.
func isHTTPURL(s string) bool {
	return vd.Var(s, "http_url") == nil
}
