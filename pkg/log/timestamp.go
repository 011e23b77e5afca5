package log

import "time"

// timestampLayout renders e.g. "Mar-07 09:05:04.987". The ".000" fraction
// truncates sub-second precision rather than rounding, so the millisecond
// field never ticks a timestamp forward.
const timestampLayout = "Jan-02 15:04:05.000"

// formatTimestamp renders t in the fixed-width local-time layout used by
// direct-mode lines.
func formatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}
