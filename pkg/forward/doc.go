// Package forward provides ready-made bridge-mode receivers.
//
// Each type implements log.Forwarder on top of an established logging
// backend. The backend owns everything past the hand-off: timestamping,
// level filtering, output multiplexing, and delivery. Forward calls are
// fire-and-forget; backend failures never reach the caller.
//
// Usage
//
//	z := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	l := log.NewLogger(log.WithSink(log.NewBridgeSink(forward.NewZerolog(z))))
//	l.InfoModule(1, "net", "peer connected")
package forward
