package logging

import "time"

const logTimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders ts in local time using the log line layout.
func FormatTimestamp(ts time.Time) string {
	return ts.In(time.Local).Format(logTimestampLayout)
}

// CurrentTimestamp renders the current wall-clock time.
func CurrentTimestamp() string {
	return FormatTimestamp(time.Now())
}

// ParseTimestamp is the inverse of FormatTimestamp.
func ParseTimestamp(value string) (time.Time, error) {
	return time.ParseInLocation(logTimestampLayout, value, time.Local)
}
