package party

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseCount converts operator-entered counter text to a non-negative
// integer. Editor forms submit counters with digit-group separators
// ("50,000"), so separators are stripped before conversion. Blank input
// maps to zero only when blankAsZero is on; anything else that is not a
// plain non-negative integer is rejected, including negative numbers.
func ParseCount(raw string, blankAsZero bool) (int, error) {
	s := strings.TrimSpace(raw)
	for _, sep := range []string{",", " ", "'"} {
		s = strings.ReplaceAll(s, sep, "")
	}

	if s == "" {
		if blankAsZero {
			return 0, nil
		}
		return 0, errors.New("count is required")
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("count must be a non-negative integer")
	}

	return n, nil
}

// FormatCount renders a counter with digit grouping for display
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
