// Package log formats log lines for zeam's multi-network peer-to-peer
// process and emits them through one of two interchangeable sinks.
//
// # Overview
//
// Every record carries a severity level, the originating network id, an
// optional module tag, and the message text. One composer produces both
// renderings; the sink chosen at construction time decides what happens to
// the composed line:
//
//   - DirectSink renders the full colorized line (timestamp, level, scope,
//     module, message) and writes it to the process error stream. A per-sink
//     mutex serializes compose-and-write end to end, so concurrent callers
//     never interleave partial lines.
//   - BridgeSink composes only the plain "[module] message" body and hands
//     it, together with the numeric network id and level code, to an
//     external Forwarder. Timestamping, filtering, and delivery are the
//     receiver's responsibility.
//
// Logging calls never fail: formatting is total, direct-mode write errors
// are swallowed (observable via WithWriteErrorHook), and bridge forwarding
// is fire-and-forget.
//
// Usage
//
//	l := log.NewLogger() // direct mode, stderr
//	l.Info(0, "node up")
//	l.DebugModule(1, "net", "peer connected")
//
//	b := log.NewLogger(log.WithSink(log.NewBridgeSink(fwd)))
//	b.Warn(2, "low peer count")
package log
