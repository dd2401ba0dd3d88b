package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleTime(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339",
			input: "2025-09-16T11:00:00Z",
			want:  time.Date(2025, 9, 16, 11, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset",
			input: "2025-09-16T16:30:00+05:30",
			want:  time.Date(2025, 9, 16, 11, 0, 0, 0, time.UTC),
		},
		{
			name:  "SQL datetime",
			input: "2025-09-16 11:00:00",
			want:  time.Date(2025, 9, 16, 11, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			input: "2025-09-16",
			want:  time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "free text",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFlexibleTime(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestToSQLDatetime(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "2025-09-16 11:00:00", ToSQLDatetime(time.Date(2025, 9, 16, 16, 30, 0, 0, ist)))
	assert.Equal(t, "2025-09-16 11:00:00", ToSQLDatetime(time.Date(2025, 9, 16, 11, 0, 0, 0, time.UTC)))
}
