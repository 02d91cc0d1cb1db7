package gie

import (
	"fmt"
	"strings"
)

// ConfigurationError reports an unusable client configuration. It is
// only ever returned at construction time: a client that constructed
// successfully never raises it again.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "gie: configuration error: " + e.Reason
}

// ValidationError reports a request parameter set that violates the
// cross-field rules. It is returned before any network I/O happens.
type ValidationError struct {
	Field   string   // offending parameter
	Allowed []string // accepted values, when the rule is an enumeration
	Reason  string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("gie: invalid parameter %q: %s", e.Field, e.Reason)
	if len(e.Allowed) > 0 {
		msg += " (must be one of: " + strings.Join(e.Allowed, ", ") + ")"
	}
	return msg
}
