package log

import "time"

// Record is one log line in flight. It is constructed and fully consumed
// within a single logging call and never shared across calls.
//
// Module == "" means no module tag; the composer omits the segment entirely.
// Time is stamped by the direct sink under its lock; bridge mode never sets
// it because timestamping belongs to the receiver.
type Record struct {
	Time      time.Time
	Level     Level
	NetworkID uint32
	Module    string
	Message   string
}
