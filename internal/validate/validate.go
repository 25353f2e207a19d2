package validate

import (
	"strconv"
	"strings"
)

// Name validates a displayable name (suitcase, category, item type).
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// IntID parses a positive integer path/query id.
func IntID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Count clamps an item count to at least 1; the add endpoint treats a
// missing count as "one item".
func Count(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
