package gie

import "time"

// JSON is a decoded response body: a JSON object or array as produced
// by encoding/json into any. The client performs no schema modeling.
type JSON = any

// RequestKind selects which validation rule set applies to a query.
type RequestKind string

const (
	KindStorage        RequestKind = "storage"
	KindUnavailability RequestKind = "unavailability"
)

// Storage data types accepted by the AGSI/ALSI storage endpoints.
const (
	StorageTypeEU = "EU"
	StorageTypeNE = "NE"
	StorageTypeAI = "AI"
)

// Unavailability event types.
const (
	UnavailabilityPlanned   = "Planned"
	UnavailabilityUnplanned = "Unplanned"
)

// End-flag values for unavailability events. The upstream does not
// reject other casings, so these are documented canon rather than a
// validated enumeration.
const (
	EndFlagConfirmed = "Confirmed"
	EndFlagEstimate  = "Estimate"
)

var (
	storageTypes        = []string{StorageTypeEU, StorageTypeNE, StorageTypeAI}
	unavailabilityTypes = []string{UnavailabilityPlanned, UnavailabilityUnplanned}

	// reverseTokens are the accepted orderings for the reverse
	// parameter, matching what the upstream parses.
	reverseTokens = []string{"true", "false", "0", "1"}
)

// DefaultPageSize is applied when a query does not set Size.
const DefaultPageSize = 30

// MaxPageSize is the largest page the upstream will serve.
const MaxPageSize = 300

// StorageQuery holds the filters for a storage data query. Zero
// values mean "not set" and are omitted from the request.
type StorageQuery struct {
	Page     int       // defaults to 1
	Size     int       // defaults to DefaultPageSize, capped at MaxPageSize
	Reverse  string    // "true", "false", "0" or "1"
	From     time.Time // inclusive lower gas-day bound
	To       time.Time // inclusive upper gas-day bound
	Date     time.Time // exact gas day
	Updated  time.Time // only records updated since this date
	Type     string    // StorageTypeEU, StorageTypeNE or StorageTypeAI
	Country  string
	Company  string // requires Country
	Facility string // requires Country and Company
}

func (q StorageQuery) params() Params {
	return Params{
		"page":     q.Page,
		"size":     q.Size,
		"reverse":  q.Reverse,
		"from":     q.From,
		"to":       q.To,
		"date":     q.Date,
		"updated":  q.Updated,
		"type":     q.Type,
		"country":  q.Country,
		"company":  q.Company,
		"facility": q.Facility,
	}
}

// UnavailabilityQuery holds the filters for an unavailability query.
// From/To bound the publication range; Start/End bound the
// unavailability period itself.
type UnavailabilityQuery struct {
	Page     int
	Size     int
	Reverse  string
	From     time.Time
	To       time.Time
	Start    time.Time
	End      time.Time
	Type     string // UnavailabilityPlanned or UnavailabilityUnplanned
	EndFlag  string // EndFlagConfirmed or EndFlagEstimate, sent verbatim
	Country  string
	Company  string
	Facility string
}

func (q UnavailabilityQuery) params() Params {
	return Params{
		"page":     q.Page,
		"size":     q.Size,
		"reverse":  q.Reverse,
		"from":     q.From,
		"to":       q.To,
		"start":    q.Start,
		"end":      q.End,
		"type":     q.Type,
		"end_flag": q.EndFlag,
		"country":  q.Country,
		"company":  q.Company,
		"facility": q.Facility,
	}
}
