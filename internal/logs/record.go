package logs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"debuglog/internal/logging"
)

// ErrMalformed reports a line that is not a rendered log record.
var ErrMalformed = errors.New("malformed log line")

// Record is one parsed log line.
type Record struct {
	Severity logging.Severity
	Time     time.Time
	File     string
	Line     int
	Message  string
}

// ParseLine parses "<LEVEL> [<timestamp>] (<file>:<line>) <message>".
// Trailing slog attributes stay part of Message.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\n")

	token, rest, ok := strings.Cut(line, " [")
	if !ok {
		return Record{}, malformed(line, "missing timestamp")
	}
	severity, err := logging.ParseSeverity(token)
	if err != nil {
		return Record{}, malformed(line, "unknown level")
	}

	stamp, rest, ok := strings.Cut(rest, "] (")
	if !ok {
		return Record{}, malformed(line, "missing source")
	}
	ts, err := logging.ParseTimestamp(stamp)
	if err != nil {
		return Record{}, malformed(line, "bad timestamp")
	}

	source, message, ok := strings.Cut(rest, ") ")
	if !ok {
		if !strings.HasSuffix(rest, ")") {
			return Record{}, malformed(line, "unterminated source")
		}
		source = strings.TrimSuffix(rest, ")")
	}
	idx := strings.LastIndexByte(source, ':')
	if idx <= 0 {
		return Record{}, malformed(line, "missing line number")
	}
	lineNo, err := strconv.Atoi(source[idx+1:])
	if err != nil || lineNo < 0 {
		return Record{}, malformed(line, "bad line number")
	}

	return Record{
		Severity: severity,
		Time:     ts,
		File:     source[:idx],
		Line:     lineNo,
		Message:  message,
	}, nil
}

func malformed(line, reason string) error {
	return fmt.Errorf("%w (%s): %q", ErrMalformed, reason, line)
}

// severityFilter drops records below min. Lines that do not parse (such as
// continuation lines of a multi-line message) follow the last record seen.
type severityFilter struct {
	min  logging.Severity
	keep bool
}

func newSeverityFilter(min logging.Severity) *severityFilter {
	return &severityFilter{min: min, keep: true}
}

func (f *severityFilter) accept(line string) bool {
	if f == nil || f.min <= logging.LevelTrace {
		return true
	}
	if rec, err := ParseLine(line); err == nil {
		f.keep = rec.Severity >= f.min
	}
	return f.keep
}
