package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02 15:04:05"
)

// datetimeLayouts are the accepted input forms for timestamp fields and
// query parameters, tried in order.
var datetimeLayouts = []string{
	DatetimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	DateLayout,
}

// ParseDate parses a calendar date and returns it at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func ParseDatetime(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported datetime format: %q", value)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDatetime(t time.Time) string {
	return t.Format(DatetimeLayout)
}
