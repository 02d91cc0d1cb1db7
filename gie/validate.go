package gie

import (
	"fmt"
	"slices"
	"time"
)

// validateParams enforces the cross-field rules a query must satisfy
// before any request is issued. It performs no I/O.
//
// Rules run in a fixed order and the first failure wins; callers and
// tests rely on which error is reported when several rules are
// violated at once, so the order is part of the contract.
func validateParams(recognized map[string]Endpoint, endpoint Endpoint, params Params, kind RequestKind) error {
	// 1. Endpoint must be a recognized platform.
	if endpoint.IsZero() {
		return &ValidationError{Field: "endpoint", Reason: "endpoint is not set"}
	}
	if known, ok := recognized[endpoint.Name()]; !ok || known.BaseURL() != endpoint.BaseURL() {
		return &ValidationError{
			Field:   "endpoint",
			Reason:  fmt.Sprintf("unknown platform %q", endpoint.Name()),
			Allowed: endpointNames(recognized),
		}
	}

	// 2. Company and facility filters only make sense within a country.
	if stringParam(params, "country") == "" &&
		(stringParam(params, "company") != "" || stringParam(params, "facility") != "") {
		return &ValidationError{
			Field:  "country",
			Reason: "country must be provided if company or facility is passed",
		}
	}

	// 3. A facility filter needs its owning company.
	if stringParam(params, "facility") != "" && stringParam(params, "company") == "" {
		return &ValidationError{
			Field:  "company",
			Reason: "company must be provided if facility is passed",
		}
	}

	// 4. Date ranges must not be inverted. The publication range and
	// the unavailability period follow the same rule.
	if err := validateDateRange(params, "from", "to"); err != nil {
		return err
	}
	if err := validateDateRange(params, "start", "end"); err != nil {
		return err
	}

	// 5. Pages are numbered from 1.
	if page, ok := intParam(params, "page"); ok && page <= 0 {
		return &ValidationError{Field: "page", Reason: "must be greater than 0"}
	}

	// 6. Page size is bounded by the upstream.
	if size, ok := intParam(params, "size"); ok && (size < 1 || size > MaxPageSize) {
		return &ValidationError{
			Field:  "size",
			Reason: fmt.Sprintf("must be between 1 and %d", MaxPageSize),
		}
	}

	// 7. Reverse accepts a small set of boolean-like tokens.
	if reverse := stringParam(params, "reverse"); reverse != "" && !slices.Contains(reverseTokens, reverse) {
		return &ValidationError{Field: "reverse", Reason: "unrecognized value", Allowed: reverseTokens}
	}

	// 8. The type enumeration depends on the request kind.
	allowedTypes := storageTypes
	if kind == KindUnavailability {
		allowedTypes = unavailabilityTypes
	}
	if typ := stringParam(params, "type"); typ != "" && !slices.Contains(allowedTypes, typ) {
		return &ValidationError{Field: "type", Reason: "unrecognized value", Allowed: allowedTypes}
	}

	return nil
}

// validateDateRange fails when both bounds are set and the lower one
// is chronologically after the upper one.
func validateDateRange(params Params, fromKey, toKey string) error {
	from, fromOK := dateParam(params, fromKey)
	to, toOK := dateParam(params, toKey)
	if fromOK && toOK && from.After(to) {
		return &ValidationError{
			Field:  fromKey,
			Reason: fmt.Sprintf("%s date is after %s date", fromKey, toKey),
		}
	}
	return nil
}

func stringParam(params Params, key string) string {
	s, _ := params[key].(string)
	return s
}

func intParam(params Params, key string) (int, bool) {
	v, ok := params[key].(int)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func dateParam(params Params, key string) (time.Time, bool) {
	t, ok := params[key].(time.Time)
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

func endpointNames(recognized map[string]Endpoint) []string {
	names := make([]string, 0, len(recognized))
	for name := range recognized {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
