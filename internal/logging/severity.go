package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Severity is the ordered importance of a log record.
type Severity int

const (
	LevelTrace Severity = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var severityNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// Severities lists every defined severity in ascending order.
func Severities() []Severity {
	return []Severity{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s >= LevelTrace && s <= LevelError
}

// String returns the upper-case level token used in rendered lines.
func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return "SEVERITY(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText encodes s as its lower-case name.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("log level: undefined severity %d", int(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText decodes a name accepted by ParseSeverity.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity maps a case-insensitive level name to a Severity.
func ParseSeverity(value string) (Severity, error) {
	switch cases.Fold().String(strings.TrimSpace(value)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("log level: unsupported value %q", value)
	}
}

// SlogLevel returns the slog level s is rendered through. Severities are
// spaced four apart with Trace at -8, so Debug through Error line up with
// the slog constants.
func (s Severity) SlogLevel() slog.Level {
	return slog.Level(4*int(s) - 8)
}

// severityOf is the inverse of SlogLevel, rounding down between severities.
func severityOf(level slog.Level) Severity {
	n := int(level) + 8
	if n < 0 {
		return Severity(-((-n + 3) / 4))
	}
	return Severity(n / 4)
}

// tokenSeverity clamps a slog level into the defined range for rendering.
func tokenSeverity(level slog.Level) Severity {
	s := severityOf(level)
	switch {
	case s < LevelTrace:
		return LevelTrace
	case s > LevelError:
		return LevelError
	default:
		return s
	}
}
