package gie

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// authHeader is the header carrying the API key on every request.
const authHeader = "x-key"

// defaultTimeout bounds requests made through the built-in session.
const defaultTimeout = 30 * time.Second

// Session is the transport a Client speaks through: one authenticated
// GET returning the raw response body. Implementations must attach
// their headers to every request they issue, and must be safe for
// concurrent use if the client is shared across goroutines.
type Session interface {
	// Get issues a GET to rawURL with the given query parameters and
	// returns the response body.
	Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error)

	// Header exposes the fixed headers the session attaches, so a
	// client can verify the credential it was handed matches.
	Header() http.Header
}

// HTTPSession is the default Session backed by net/http.
type HTTPSession struct {
	httpClient *http.Client
	header     http.Header
}

var _ Session = (*HTTPSession)(nil)

// NewHTTPSession creates a session that authenticates with the given
// API key. A nil httpClient falls back to one with a 30s timeout.
// One session may be shared by several clients holding the same key.
func NewHTTPSession(apiKey string, httpClient *http.Client) *HTTPSession {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	header := make(http.Header)
	header.Set(authHeader, apiKey)
	header.Set("Accept", "application/json")
	return &HTTPSession{httpClient: httpClient, header: header}
}

// Header returns the fixed headers sent with every request. The
// returned map must not be mutated after the session is in use.
func (s *HTTPSession) Header() http.Header { return s.header }

// Get issues the request and returns the body regardless of status
// code. The platforms report errors as JSON payloads, so status
// handling is the caller's concern, not the transport's.
func (s *HTTPSession) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, vals := range s.header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
