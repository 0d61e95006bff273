// Package dates normalizes the backend's ISO-ish date strings for display.
package dates

import "time"

// NoDate is returned for absent or unparseable input
const NoDate = "No Date"

// layouts the backend has been observed to emit
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a date string as YYYY-MM-DD using UTC field extraction,
// shifted by offsetHours first. The offset exists so deployments can
// reproduce the legacy fixed display shift, pass 0 for plain UTC.
func FormatDate(value string, offsetHours int) string {
	t, ok := parse(value)
	if !ok {
		return NoDate
	}
	return t.Add(time.Duration(offsetHours) * time.Hour).Format("2006-01-02")
}

// FormatDateTime renders a date string as "YYYY-MM-DD HH:MM", same rules as
// FormatDate.
func FormatDateTime(value string, offsetHours int) string {
	t, ok := parse(value)
	if !ok {
		return NoDate
	}
	return t.Add(time.Duration(offsetHours) * time.Hour).Format("2006-01-02 15:04")
}

// ParseTimestamp returns the instant a date string represents, for sorting.
// Unparseable input sorts first.
func ParseTimestamp(value string) int64 {
	t, ok := parse(value)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

func parse(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
