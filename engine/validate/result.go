package validate

import "fmt"

// Result is the outcome of validating a business configuration. Violations
// are human-readable and appear in walk order; Valid is true exactly when
// Errors is empty.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// collector accumulates violations during a single validation pass. It lives
// only for the duration of one Validate call, so repeated or concurrent calls
// never share state.
type collector struct {
	errs []string
}

func (c *collector) add(msg string) {
	c.errs = append(c.errs, msg)
}

func (c *collector) addf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Sprintf(format, args...))
}

func (c *collector) result() *Result {
	errs := c.errs
	if errs == nil {
		errs = []string{}
	}
	return &Result{Valid: len(errs) == 0, Errors: errs}
}
