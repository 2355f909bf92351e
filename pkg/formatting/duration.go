package formatting

import (
	"strconv"
	"time"
)

// FormatDuration renders a duration for API responses: whole milliseconds
// below one second, seconds with two decimals otherwise.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}
	return strconv.FormatFloat(d.Seconds(), 'f', 2, 64) + "s"
}
