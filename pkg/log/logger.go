package log

// Logger is the public call surface. The sink is fixed at construction;
// both modes expose the identical set of methods and none of them can fail.
type Logger struct {
	sink Sink
}

// Option configures a Logger.
type Option func(*Logger)

// WithSink selects the output sink. Defaults to a DirectSink on os.Stderr.
func WithSink(s Sink) Option {
	return func(l *Logger) {
		if s != nil {
			l.sink = s
		}
	}
}

// NewLogger creates a logger. Instances are independent; two direct-mode
// loggers with separate sinks do not contend on a shared lock.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{}
	for _, opt := range opts {
		opt(l)
	}
	if l.sink == nil {
		l.sink = NewDirectSink()
	}
	return l
}

// Debug logs a debug-level message for the given network.
func (l *Logger) Debug(networkID uint32, message string) {
	l.emit(DebugLevel, networkID, "", message)
}

// Info logs an info-level message for the given network.
func (l *Logger) Info(networkID uint32, message string) {
	l.emit(InfoLevel, networkID, "", message)
}

// Warn logs a warn-level message for the given network.
func (l *Logger) Warn(networkID uint32, message string) {
	l.emit(WarnLevel, networkID, "", message)
}

// Error logs an error-level message for the given network.
func (l *Logger) Error(networkID uint32, message string) {
	l.emit(ErrorLevel, networkID, "", message)
}

// DebugModule logs a debug-level message tagged with a module name.
func (l *Logger) DebugModule(networkID uint32, module, message string) {
	l.emit(DebugLevel, networkID, module, message)
}

// InfoModule logs an info-level message tagged with a module name.
func (l *Logger) InfoModule(networkID uint32, module, message string) {
	l.emit(InfoLevel, networkID, module, message)
}

// WarnModule logs a warn-level message tagged with a module name.
func (l *Logger) WarnModule(networkID uint32, module, message string) {
	l.emit(WarnLevel, networkID, module, message)
}

// ErrorModule logs an error-level message tagged with a module name.
func (l *Logger) ErrorModule(networkID uint32, module, message string) {
	l.emit(ErrorLevel, networkID, module, message)
}

func (l *Logger) emit(level Level, networkID uint32, module, message string) {
	l.sink.Emit(Record{
		Level:     level,
		NetworkID: networkID,
		Module:    module,
		Message:   message,
	})
}
