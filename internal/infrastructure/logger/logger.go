package logger

import (
	"log"
	"os"

	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// StdLogger is a simple logger that uses the standard log package.
type StdLogger struct {
	l     *log.Logger
	debug bool
}

// NewStdLogger creates a new StdLogger writing to stderr.
func NewStdLogger() usecasecontract.IAppLogger {
	return &StdLogger{l: log.New(os.Stderr, "", log.LstdFlags), debug: os.Getenv("LOG_DEBUG") != ""}
}

// NewComponentLogger prefixes every line with the component name.
func NewComponentLogger(component string) usecasecontract.IAppLogger {
	return &StdLogger{
		l:     log.New(os.Stderr, "["+component+"] ", log.LstdFlags|log.Lmsgprefix),
		debug: os.Getenv("LOG_DEBUG") != "",
	}
}

// Debugf logs a debug message when LOG_DEBUG is set.
func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		l.l.Printf("[DEBUG] "+format, args...)
	}
}

// Infof logs an info message.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.l.Printf("[INFO] "+format, args...)
}

// Warnf logs a warning message.
func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.l.Printf("[WARN] "+format, args...)
}

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	l.l.Printf("[ERROR] "+format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	l.l.Fatalf("[FATAL] "+format, args...)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

// Nop returns a logger that discards all output.
func Nop() usecasecontract.IAppLogger {
	return nopLogger{}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l usecasecontract.IAppLogger) usecasecontract.IAppLogger {
	if l == nil {
		return Nop()
	}
	return l
}
