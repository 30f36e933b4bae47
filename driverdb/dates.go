package driverdb

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is the spreadsheet format's day zero. Serial day counts are
// offsets from this date, so serial 1 is 1899-12-31.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialPattern matches a day count: digits, optionally with a trailing
// ".0..." left behind by float formatting. A leading minus is accepted so
// that non-positive counts convert to the empty string instead of
// surviving as bogus text.
var serialPattern = regexp.MustCompile(`^-?\d+(?:\.0+)?$`)

// serialToISO converts a spreadsheet date-serial day count to an ISO
// YYYY-MM-DD string. Non-positive counts convert to the empty string.
// Any value that is not a pure day count passes through unchanged: it is
// already free text or an ISO-like date, and no further validation is
// performed.
func serialToISO(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !serialPattern.MatchString(value) {
		return value
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	n := int(f)
	if n <= 0 {
		return ""
	}
	return serialEpoch.AddDate(0, 0, n).Format("2006-01-02")
}
