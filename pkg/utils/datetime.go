package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateTimeLayout = "2006-01-02T15:04:05"

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// ParseDateTime accepts ISO-8601 local date-times (seconds and fraction optional)
// and RFC 3339 timestamps carrying an offset. The result is always in UTC, so
// offset input is shifted and local input is read as UTC wall time.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", value)
}

// FormatDateTime renders t as UTC wall time without an offset.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}
