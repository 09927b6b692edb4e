package ingestion

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing a posted-date cell.
// Unparseable values are treated as absent rather than failing
// ingestion.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// parseDate parses a raw date cell, returning nil when the value is
// empty or matches no known layout.
func parseDate(value string) *time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
