// Package gie provides a client for the GIE (Gas Infrastructure
// Europe) transparency platforms: AGSI for gas storage and ALSI for
// LNG storage.
//
// The client is a thin layer over the platforms' REST API. It
// validates query parameters, builds request URLs, and returns
// decoded JSON bodies verbatim — no schema modeling, no retries, no
// pagination traversal.
//
// # Usage
//
// Create a client with your API key and query a platform:
//
//	client, err := gie.NewClient("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data, err := client.QueryStorage(ctx, gie.AGSI, gie.StorageQuery{
//		Country: "DE",
//		From:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
//		To:      time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
//	})
//
// # Validation
//
// Every query method validates its parameters before touching the
// network. Company and facility filters depend on a country, date
// ranges must not be inverted, and page, size, reverse and type are
// range- or enum-checked. Violations surface as *ValidationError
// naming the offending field.
//
// # Transport
//
// Requests go through a Session, a one-method transport carrying the
// x-key credential header. The default session wraps net/http; a
// custom session supplied with WithSession must already carry the
// matching x-key header or NewClient fails with *ConfigurationError.
// Network and JSON decode failures are passed through to the caller
// unmodified.
package gie
