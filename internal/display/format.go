package display

import (
	"fmt"
	"strconv"
)

// FormatStat renders an average using the shortest representation that
// round-trips the value, so whole averages print without a trailing ".0"
// (5, 80, 2.5).
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatFileCount returns a "N day log(s)" label for check/verbose output.
func FormatFileCount(n int) string {
	if n == 1 {
		return "1 day log"
	}
	return fmt.Sprintf("%d day logs", n)
}
