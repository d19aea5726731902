package utils

import "time"

// DayKey formats a time as the YYYY-MM-DD bucket key used for daily
// aggregation.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDayKey parses a YYYY-MM-DD bucket key.
func ParseDayKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}
