package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "valid comparison",
			expression: `Country == "DE"`,
		},
		{
			name:       "valid with helpers",
			expression: `number(full) > 80 && contains(name, "storage")`,
		},
		{
			name:       "empty expression",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "syntax error",
			expression: `Country ==`,
			wantErr:    true,
		},
		{
			name:       "non-boolean result",
			expression: `1 + 1`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				var cerr *CompilationError
				require.ErrorAs(t, err, &cerr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	record := map[string]any{
		"name":    "ABC Storage Facility",
		"code":    "21X0000000001234",
		"country": "DE",
		"full":    "84.5",
		"status":  "Confirmed",
	}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{
			name:       "field equality",
			expression: `country == "DE"`,
			want:       true,
		},
		{
			name:       "field mismatch",
			expression: `country == "FR"`,
			want:       false,
		},
		{
			name:       "numeric string comparison",
			expression: `number(full) > 80`,
			want:       true,
		},
		{
			name:       "case-insensitive contains",
			expression: `contains(name, "storage")`,
			want:       true,
		},
		{
			name:       "missing field compares as nil",
			expression: `missing == nil`,
			want:       true,
		},
		{
			name:       "record map access",
			expression: `Record.status == "Confirmed"`,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(record))
		})
	}
}

func TestApply(t *testing.T) {
	records := []any{
		map[string]any{"country": "DE", "full": "90.1"},
		map[string]any{"country": "FR", "full": "55.0"},
		map[string]any{"country": "DE", "full": "40.2"},
		"not a record",
	}

	f, err := Compile(`country == "DE" && number(full) > 50`)
	require.NoError(t, err)

	got := f.Apply(records)
	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{"country": "DE", "full": "90.1"}, got[0])
}
