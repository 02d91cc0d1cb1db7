package gie

import (
	"net/url"
	"strings"
)

// Endpoint identifies one upstream GIE transparency platform by its
// API base URL.
type Endpoint struct {
	name string
	base *url.URL
}

// Built-in platforms. Additional platforms come from configuration
// via WithEndpoints, not from code changes.
var (
	// AGSI is the gas storage transparency platform.
	AGSI = mustEndpoint("agsi", "https://agsi.gie.eu/api/")

	// ALSI is the LNG storage transparency platform.
	ALSI = mustEndpoint("alsi", "https://alsi.gie.eu/api/")
)

// NewEndpoint creates an endpoint from a name and an absolute base URL.
func NewEndpoint(name, baseURL string) (Endpoint, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Endpoint{}, &ConfigurationError{Reason: "endpoint name is required"}
	}

	u, err := url.Parse(baseURL)
	if err != nil || !u.IsAbs() {
		return Endpoint{}, &ConfigurationError{Reason: "endpoint base URL must be absolute: " + baseURL}
	}

	return Endpoint{name: name, base: u}, nil
}

func mustEndpoint(name, baseURL string) Endpoint {
	e, err := NewEndpoint(name, baseURL)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the platform name, e.g. "agsi".
func (e Endpoint) Name() string { return e.name }

// BaseURL returns the platform API base URL.
func (e Endpoint) BaseURL() string {
	if e.base == nil {
		return ""
	}
	return e.base.String()
}

// IsZero reports whether the endpoint is the unusable zero value.
func (e Endpoint) IsZero() bool { return e.base == nil }

// resolve joins an optional relative path onto the base URL using
// standard relative-reference resolution. An empty path yields the
// base URL itself.
func (e Endpoint) resolve(path string) string {
	if path == "" {
		return e.base.String()
	}
	ref := &url.URL{Path: path}
	return e.base.ResolveReference(ref).String()
}

// builtinEndpoints is the recognized set a client starts from.
func builtinEndpoints() map[string]Endpoint {
	return map[string]Endpoint{
		AGSI.name: AGSI,
		ALSI.name: ALSI,
	}
}
