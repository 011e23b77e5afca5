package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Sink consumes fully described records. Implementations must never
// propagate failure to the caller.
type Sink interface {
	Emit(rec Record)
}

// Forwarder is the bridge-mode boundary: a single call handing the plain
// text plus numeric metadata to an external logging facility. The receiver
// owns timestamping, filtering, multiplexing, and final delivery, including
// its own thread-safety and any failure handling.
type Forwarder interface {
	Forward(networkID uint32, levelCode uint32, text string)
}

// DirectSink renders colorized lines and writes them to a single stream,
// os.Stderr by default. One mutex covers the whole stamp-compose-write
// sequence, so concurrent emits never interleave partial lines. Callers
// block on contention with no timeout.
type DirectSink struct {
	mu      sync.Mutex
	w       io.Writer
	now     func() time.Time
	onError func(error)
}

// DirectSinkOption configures a DirectSink.
type DirectSinkOption func(*DirectSink)

// WithWriter sets the output stream.
func WithWriter(w io.Writer) DirectSinkOption {
	return func(s *DirectSink) {
		if w != nil {
			s.w = w
		}
	}
}

// WithClock sets the wall-clock source used to stamp records.
func WithClock(now func() time.Time) DirectSinkOption {
	return func(s *DirectSink) {
		if now != nil {
			s.now = now
		}
	}
}

// WithWriteErrorHook observes swallowed write errors. The hook runs under
// the sink lock and must not log through the same sink.
func WithWriteErrorHook(fn func(error)) DirectSinkOption {
	return func(s *DirectSink) {
		s.onError = fn
	}
}

// NewDirectSink creates a direct sink writing to os.Stderr unless
// overridden.
func NewDirectSink(opts ...DirectSinkOption) *DirectSink {
	s := &DirectSink{
		w:   os.Stderr,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit stamps, composes, and writes one line. Write failures are swallowed;
// a logger must never crash its host on a broken output stream.
func (s *DirectSink) Emit(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.Time = s.now()
	if _, err := io.WriteString(s.w, composeDirect(rec)+"\n"); err != nil {
		if s.onError != nil {
			s.onError(err)
		}
	}
}

// BridgeSink hands records to an external Forwarder. It holds no lock: the
// composer is pure and the forwarding call's thread-safety is the
// receiver's contract.
type BridgeSink struct {
	forwarder Forwarder
}

// NewBridgeSink creates a bridge sink delivering to f.
func NewBridgeSink(f Forwarder) *BridgeSink {
	return &BridgeSink{forwarder: f}
}

// Emit forwards the (network id, level code, plain text) triple,
// fire-and-forget. A nil forwarder drops the record.
func (s *BridgeSink) Emit(rec Record) {
	if s.forwarder == nil {
		return
	}
	s.forwarder.Forward(rec.NetworkID, rec.Level.Code(), composeBridge(rec))
}
