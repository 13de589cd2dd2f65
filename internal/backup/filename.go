package backup

import (
	"fmt"
	"strings"
	"time"
)

// TimestampFormat names the per-run directory under the output directory.
const TimestampFormat = "20060102_150405"

// ArchiveFilename returns a human-readable archive name for t, for example
// "august_28_2026_1_05_pm.zip". There is no collision avoidance; two runs
// archived within the same minute produce the same name and the later one
// wins.
func ArchiveFilename(t time.Time) string {
	month := strings.ToLower(t.Month().String())
	hour, period := clock12(t.Hour())
	return fmt.Sprintf("%s_%d_%d_%d_%02d_%s.zip", month, t.Day(), t.Year(), hour, t.Minute(), period)
}

// clock12 maps a 24-hour value onto the 12-hour clock: 0 is 12 am, 12 is
// 12 pm, everything else wraps modulo 12.
func clock12(hour int) (int, string) {
	switch {
	case hour == 0:
		return 12, "am"
	case hour < 12:
		return hour, "am"
	case hour == 12:
		return 12, "pm"
	default:
		return hour - 12, "pm"
	}
}
