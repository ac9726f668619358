// Package guard turns "log the reason and bail out" checks into error
// returns.
//
// Each guard logs through the supplied Logger only when its condition fails
// and then returns a *Failure; callers return it and let deferred cleanup
// run:
//
//	f, err := os.Open(path)
//	if err := guard.CheckErr(log, err, "open %s", path); err != nil {
//		return err
//	}
//	defer f.Close()
//
// Records are attributed to the line that called the guard.
package guard

import (
	"errors"
	"fmt"

	"debuglog/internal/logging"
)

// ErrOutOfMemory is wrapped by failures returned from CheckMem.
var ErrOutOfMemory = errors.New("out of memory")

const outOfMemoryMessage = "Out of memory."

// Logger is the subset of *logging.Logger the guards need.
type Logger interface {
	LogDepth(depth int, level logging.Severity, format string, args ...any)
}

// Failure is returned by a guard whose condition did not hold. Message is
// the text that was logged.
type Failure struct {
	Severity logging.Severity
	Message  string
	Err      error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Check logs an Error record and returns a *Failure when cond is false.
func Check(l Logger, cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fail(l, logging.LevelError, nil, fmt.Sprintf(format, args...))
}

// CheckDebug is Check for expected conditions: the record is logged at
// Debug instead of Error.
func CheckDebug(l Logger, cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fail(l, logging.LevelDebug, nil, fmt.Sprintf(format, args...))
}

// CheckMem fails with ErrOutOfMemory when p is nil.
func CheckMem[T any](l Logger, p *T) error {
	if p != nil {
		return nil
	}
	return fail(l, logging.LevelError, ErrOutOfMemory, outOfMemoryMessage)
}

// CheckErr logs "<message>: <err>" at Error and returns a *Failure wrapping
// err when err is non-nil.
func CheckErr(l Logger, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fail(l, logging.LevelError, err, fmt.Sprintf(format, args...)+": "+err.Error())
}

// Describe renders err for log messages, using "None" for nil.
func Describe(err error) string {
	if err == nil {
		return "None"
	}
	return err.Error()
}

// fail must be called directly from an exported guard so that depth 2
// lands on the guard's caller.
func fail(l Logger, level logging.Severity, cause error, message string) *Failure {
	f := &Failure{Severity: level, Message: message, Err: cause}
	if l != nil {
		l.LogDepth(2, level, "%s", message)
	}
	return f
}
