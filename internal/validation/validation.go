// Package validation checks payer-entered reference and amount fields.
// Each validator runs an ordered list of rules and returns the first
// failure; expected bad input is a Result, never an error.
package validation

// Result is the outcome of validating a single field.
type Result struct {
	Valid   bool
	Message string
}

// Valid returns a passing result.
func Valid() Result {
	return Result{Valid: true}
}

// Invalid returns a failing result with a display message.
func Invalid(message string) Result {
	return Result{Message: message}
}

// rule is one named check in an ordered rule list. It returns a failure
// message, or "" when the value passes.
type rule struct {
	name  string
	check func(value string) string
}

// apply runs rules in order and returns the first failure.
func apply(rules []rule, value string) Result {
	for _, r := range rules {
		if msg := r.check(value); msg != "" {
			return Invalid(msg)
		}
	}
	return Valid()
}
