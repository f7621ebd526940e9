package normalize

import (
	"regexp"
	"strings"
	"time"
)

const canonicalLayout = "2006-01-02 15:04:05"

var usDatePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// NormalizeDate rewrites MM/DD/YYYY input to YYYY-MM-DD. Any other non-empty
// input passes through unchanged; nothing beyond the one alternate pattern is
// validated. Returns nil for empty input.
func NormalizeDate(input string) *string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	if m := usDatePattern.FindStringSubmatch(trimmed); m != nil {
		rewritten := m[3] + "-" + m[1] + "-" + m[2]
		return &rewritten
	}
	return &trimmed
}

// CombineDateAndTime joins a canonical date with an HH:mm or HH:mm:ss
// time-of-day into "YYYY-MM-DD HH:mm:ss". Returns nil when either part is
// missing or the combined string is not a valid calendar instant. Callers
// treat nil as "no value provided", not as an error.
func CombineDateAndTime(dateStr, timeStr string) *string {
	date := strings.TrimSpace(dateStr)
	clock := strings.TrimSpace(timeStr)
	if date == "" || clock == "" {
		return nil
	}
	if strings.Count(clock, ":") == 1 {
		clock += ":00"
	}
	combined := date + " " + clock
	if _, err := time.Parse(canonicalLayout, combined); err != nil {
		return nil
	}
	return &combined
}
