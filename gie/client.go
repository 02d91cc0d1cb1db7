package gie

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client queries the GIE transparency platforms. It is stateless
// between calls: the only things it holds are the credential, the
// transport session and the set of recognized platforms, none of
// which change after construction.
type Client struct {
	apiKey    string
	session   Session
	endpoints map[string]Endpoint
	logger    zerolog.Logger
}

// Option configures a Client at construction time.
type Option func(*clientOptions)

type clientOptions struct {
	session    Session
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
	extra      []Endpoint
}

// WithSession supplies an externally built transport session. The
// session's x-key header must match the client's API key; the
// constructor fails otherwise.
func WithSession(session Session) Option {
	return func(o *clientOptions) {
		o.session = session
	}
}

// WithHTTPClient sets the http.Client backing the default session.
// Ignored when WithSession is used.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the default session's request timeout. Ignored
// when WithSession or WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithEndpoints extends the recognized platform set beyond the
// built-in AGSI/ALSI members. An endpoint reusing a built-in name
// replaces it.
func WithEndpoints(endpoints ...Endpoint) Option {
	return func(o *clientOptions) {
		o.extra = append(o.extra, endpoints...)
	}
}

// NewClient creates a client for the given API key.
//
// If no session is supplied one is created internally with the key
// attached as the x-key header. A supplied session is verified up
// front: a client is never observable with a session whose credential
// disagrees with its own.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Reason: "API key is required"}
	}

	o := clientOptions{
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	session := o.session
	if session == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		session = NewHTTPSession(apiKey, httpClient)
	} else if err := verifySessionHeader(session, apiKey); err != nil {
		return nil, err
	}

	endpoints := builtinEndpoints()
	for _, e := range o.extra {
		if e.IsZero() {
			return nil, &ConfigurationError{Reason: "endpoint is not set"}
		}
		endpoints[e.Name()] = e
	}

	return &Client{
		apiKey:    apiKey,
		session:   session,
		endpoints: endpoints,
		logger:    o.logger,
	}, nil
}

// verifySessionHeader checks a supplied session already carries the
// right credential. Failing here keeps credential mismatches a
// construction-time error instead of a confusing 401 later.
func verifySessionHeader(session Session, apiKey string) error {
	values, ok := session.Header()[http.CanonicalHeaderKey(authHeader)]
	if !ok || len(values) == 0 {
		return &ConfigurationError{Reason: "session headers must include " + authHeader}
	}
	if values[0] != apiKey {
		return &ConfigurationError{Reason: "session headers carry an incorrect " + authHeader}
	}
	return nil
}

// LookupEndpoint resolves a platform name against the recognized set.
func (c *Client) LookupEndpoint(name string) (Endpoint, bool) {
	e, ok := c.endpoints[name]
	return e, ok
}

// Fetch issues one GET against the endpoint, optionally under a
// relative path, and returns the decoded JSON body as-is. Empty
// parameters are dropped before the request goes out. Transport and
// decode failures are returned unmodified; Fetch never retries,
// wraps or suppresses them.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint, params Params, path string) (JSON, error) {
	if endpoint.IsZero() {
		return nil, &ValidationError{Field: "endpoint", Reason: "endpoint is not set"}
	}

	requestURL := endpoint.resolve(path)
	values := params.filtered().encode()

	c.logger.Debug().
		Str("platform", endpoint.Name()).
		Str("url", requestURL).
		Str("params", values.Encode()).
		Msg("fetching")

	body, err := c.session.Get(ctx, requestURL, values)
	if err != nil {
		return nil, err
	}

	var decoded JSON
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// QueryStorage queries storage data on a platform. Page defaults to
// 1 and Size to DefaultPageSize; the query is validated before any
// request is issued.
func (c *Client) QueryStorage(ctx context.Context, endpoint Endpoint, query StorageQuery) (JSON, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Size == 0 {
		query.Size = DefaultPageSize
	}

	params := query.params()
	if err := validateParams(c.endpoints, endpoint, params, KindStorage); err != nil {
		return nil, err
	}
	return c.Fetch(ctx, endpoint, params, "")
}

// QueryUnavailability queries unavailability events on a platform.
// Defaults and validation mirror QueryStorage, with the
// unavailability type enumeration in force.
func (c *Client) QueryUnavailability(ctx context.Context, endpoint Endpoint, query UnavailabilityQuery) (JSON, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Size == 0 {
		query.Size = DefaultPageSize
	}

	params := query.params()
	if err := validateParams(c.endpoints, endpoint, params, KindUnavailability); err != nil {
		return nil, err
	}
	return c.Fetch(ctx, endpoint, params, "unavailability")
}

// QueryEICListing fetches the platform's EIC identifier listing.
// When complete is true the full listing is requested.
func (c *Client) QueryEICListing(ctx context.Context, endpoint Endpoint, complete bool) (JSON, error) {
	var params Params
	if complete {
		params = Params{"show": "listing"}
	}
	return c.Fetch(ctx, endpoint, params, "about")
}

// QueryNewsListing fetches the platform's news listing, or a single
// item when newsURL is non-empty.
func (c *Client) QueryNewsListing(ctx context.Context, endpoint Endpoint, newsURL string) (JSON, error) {
	var params Params
	if newsURL != "" {
		params = Params{"url": newsURL}
	}
	return c.Fetch(ctx, endpoint, params, "news")
}
