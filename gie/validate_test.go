package gie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateParams(t *testing.T) {
	recognized := builtinEndpoints()

	tests := []struct {
		name      string
		endpoint  Endpoint
		params    Params
		kind      RequestKind
		wantField string
	}{
		{
			name:     "valid storage query",
			endpoint: AGSI,
			params: Params{
				"country": "DE",
				"company": "ABC Corp",
				"from":    date(2023, 1, 1),
				"to":      date(2023, 12, 31),
				"page":    1,
				"size":    100,
				"reverse": "true",
				"type":    "EU",
			},
			kind: KindStorage,
		},
		{
			name:      "zero endpoint",
			endpoint:  Endpoint{},
			params:    Params{},
			kind:      KindStorage,
			wantField: "endpoint",
		},
		{
			name:      "company without country",
			endpoint:  AGSI,
			params:    Params{"company": "ABC Corp"},
			kind:      KindStorage,
			wantField: "country",
		},
		{
			name:      "facility without country",
			endpoint:  ALSI,
			params:    Params{"facility": "Terminal 1"},
			kind:      KindStorage,
			wantField: "country",
		},
		{
			name:      "facility without company",
			endpoint:  AGSI,
			params:    Params{"country": "DE", "facility": "Facility 1"},
			kind:      KindStorage,
			wantField: "company",
		},
		{
			name:      "inverted from/to range",
			endpoint:  AGSI,
			params:    Params{"from": date(2023, 12, 31), "to": date(2023, 1, 1)},
			kind:      KindStorage,
			wantField: "from",
		},
		{
			name:      "inverted start/end range",
			endpoint:  AGSI,
			params:    Params{"start": date(2023, 6, 2), "end": date(2023, 6, 1)},
			kind:      KindUnavailability,
			wantField: "start",
		},
		{
			name:     "open-ended ranges are fine",
			endpoint: AGSI,
			params:   Params{"from": date(2023, 1, 1), "end": date(2023, 6, 1)},
			kind:     KindStorage,
		},
		{
			name:     "equal range bounds are fine",
			endpoint: AGSI,
			params:   Params{"from": date(2023, 1, 1), "to": date(2023, 1, 1)},
			kind:     KindStorage,
		},
		{
			name:      "negative page",
			endpoint:  AGSI,
			params:    Params{"page": -1},
			kind:      KindStorage,
			wantField: "page",
		},
		{
			name:      "size above limit",
			endpoint:  AGSI,
			params:    Params{"size": 301},
			kind:      KindStorage,
			wantField: "size",
		},
		{
			name:      "negative size",
			endpoint:  AGSI,
			params:    Params{"size": -5},
			kind:      KindStorage,
			wantField: "size",
		},
		{
			name:     "size at limit",
			endpoint: AGSI,
			params:   Params{"size": 300},
			kind:     KindStorage,
		},
		{
			name:      "bad reverse token",
			endpoint:  AGSI,
			params:    Params{"reverse": "yes"},
			kind:      KindStorage,
			wantField: "reverse",
		},
		{
			name:     "numeric reverse token",
			endpoint: AGSI,
			params:   Params{"reverse": "1"},
			kind:     KindStorage,
		},
		{
			name:     "storage type accepted",
			endpoint: AGSI,
			params:   Params{"type": "NE"},
			kind:     KindStorage,
		},
		{
			name:      "unavailability type rejected for storage",
			endpoint:  AGSI,
			params:    Params{"type": "Planned"},
			kind:      KindStorage,
			wantField: "type",
		},
		{
			name:     "unavailability type accepted",
			endpoint: AGSI,
			params:   Params{"type": "Unplanned"},
			kind:     KindUnavailability,
			wantField: "",
		},
		{
			name:      "type casing is significant",
			endpoint:  AGSI,
			params:    Params{"type": "planned"},
			kind:      KindUnavailability,
			wantField: "type",
		},
		{
			name:      "invalid type",
			endpoint:  AGSI,
			params:    Params{"type": "InvalidType"},
			kind:      KindUnavailability,
			wantField: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParams(recognized, tt.endpoint, tt.params, tt.kind)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateParamsUnknownEndpoint(t *testing.T) {
	rogue, err := NewEndpoint("rogue", "https://rogue.example.com/api/")
	require.NoError(t, err)

	err = validateParams(builtinEndpoints(), rogue, Params{}, KindStorage)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endpoint", verr.Field)
	assert.Equal(t, []string{"agsi", "alsi"}, verr.Allowed)
}

func TestValidateParamsExtendedSet(t *testing.T) {
	custom, err := NewEndpoint("agsitest", "https://agsitest.gie.eu/api/")
	require.NoError(t, err)

	recognized := builtinEndpoints()
	recognized[custom.Name()] = custom

	assert.NoError(t, validateParams(recognized, custom, Params{}, KindStorage))
}

// Earlier rules mask later ones: a mapping violating both the country
// dependency and the size bound must report the country error.
func TestValidateParamsRuleOrder(t *testing.T) {
	params := Params{
		"company": "ABC Corp",
		"size":    500,
		"reverse": "maybe",
		"type":    "bogus",
	}

	err := validateParams(builtinEndpoints(), AGSI, params, KindStorage)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "country", verr.Field)
}

func TestValidationErrorMessage(t *testing.T) {
	err := validateParams(builtinEndpoints(), AGSI, Params{"type": "XX"}, KindStorage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"type"`)
	assert.Contains(t, err.Error(), "EU, NE, AI")
}
