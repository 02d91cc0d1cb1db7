package gie

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// DateFormat is the wire format for all date parameters.
const DateFormat = "2006-01-02"

// Params is a raw request parameter mapping. Values may be string,
// int, bool, time.Time or nil; anything empty is dropped before the
// request goes out.
type Params map[string]any

// filtered returns a copy containing only the entries that carry a
// value. The upstream API treats an empty parameter as an error, so
// nil, "", 0, false and the zero time are all omitted rather than
// sent as empty strings.
func (p Params) filtered() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if hasValue(v) {
			out[k] = v
		}
	}
	return out
}

func hasValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case int:
		return val != 0
	case bool:
		return val
	case time.Time:
		return !val.IsZero()
	default:
		return true
	}
}

// encode converts the mapping into query-string values. Dates use
// DateFormat, booleans encode as "true"/"false".
func (p Params) encode() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		switch val := v.(type) {
		case string:
			values.Set(k, val)
		case int:
			values.Set(k, strconv.Itoa(val))
		case bool:
			values.Set(k, strconv.FormatBool(val))
		case time.Time:
			values.Set(k, val.Format(DateFormat))
		default:
			values.Set(k, fmt.Sprint(val))
		}
	}
	return values
}
