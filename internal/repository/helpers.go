package repository

import (
	"time"
)

// parseTime parses a stored RFC3339 timestamp column.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// utcString formats a timestamp for storage. Normalizing to UTC keeps the
// stored RFC3339 strings in lexicographic instant order, so ORDER BY over
// the column is correct regardless of the offset the time was recorded in.
func utcString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// nullableBytes converts a possibly-empty blob to a value suitable for
// SQLite storage. Returns nil (SQL NULL) for empty input.
func nullableBytes(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
