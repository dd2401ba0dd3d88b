package utils

import (
	"fmt"
	"sparrc-service/internal/pkg/constvars"
	"time"
)

// Timestamp layouts accepted on the wire, in order of preference. Clients
// send ISO-8601; the database hands back SQL datetime strings.
var acceptedTimeLayouts = []string{
	time.RFC3339,
	constvars.SQLDatetimeLayout,
	constvars.SQLDateLayout,
}

func ParseFlexibleTime(value string) (time.Time, error) {
	for _, layout := range acceptedTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func ToSQLDatetime(t time.Time) string {
	return t.UTC().Format(constvars.SQLDatetimeLayout)
}
