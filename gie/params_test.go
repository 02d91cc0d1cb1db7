package gie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParamsFiltered(t *testing.T) {
	params := Params{
		"a": "x",
		"b": "",
		"c": 0,
		"d": nil,
		"e": false,
		"f": "y",
	}

	assert.Equal(t, Params{"a": "x", "f": "y"}, params.filtered())
}

func TestParamsFilteredDatesAndBools(t *testing.T) {
	params := Params{
		"from":    date(2023, 1, 1),
		"to":      time.Time{},
		"reverse": true,
		"page":    1,
	}

	got := params.filtered()
	assert.Equal(t, Params{
		"from":    date(2023, 1, 1),
		"reverse": true,
		"page":    1,
	}, got)
}

func TestParamsEncode(t *testing.T) {
	params := Params{
		"country": "DE",
		"page":    2,
		"reverse": true,
		"from":    date(2023, 1, 1),
	}

	values := params.encode()
	assert.Equal(t, "DE", values.Get("country"))
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "true", values.Get("reverse"))
	assert.Equal(t, "2023-01-01", values.Get("from"))
}
