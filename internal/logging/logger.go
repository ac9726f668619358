package logging

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"debuglog/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	// Level is the initial minimum severity. The zero value is LevelTrace.
	Level Severity
	// Fallback receives records while no sink is set. Defaults to os.Stderr.
	Fallback io.Writer
	// Clock stamps records. Defaults to time.Now.
	Clock func() time.Time
	// Color wraps the level token in ANSI escapes on the fallback stream.
	Color bool
}

// Logger is a leveled line logger with an optional file sink. It is safe
// for concurrent use.
type Logger struct {
	level   *slog.LevelVar
	now     func() time.Time
	color   bool
	handler *lineHandler

	mu       sync.Mutex
	fallback io.Writer
	sink     *fileSink
}

type fileSink struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// New constructs a Logger using the provided options.
func New(opts Options) *Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(opts.Level.SlogLevel())

	fallback := opts.Fallback
	if fallback == nil {
		fallback = os.Stderr
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	l := &Logger{
		level:    levelVar,
		now:      clock,
		color:    opts.Color,
		fallback: fallback,
	}
	l.handler = &lineHandler{logger: l}
	return l
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return New(Options{Level: LevelError + 1, Fallback: io.Discard})
}

// NewFromConfig creates a logger from host configuration. Records go to the
// configured sink, or to fallback (os.Stderr when nil) if no sink is set.
func NewFromConfig(cfg *config.Config, fallback io.Writer) (*Logger, error) {
	if fallback == nil {
		fallback = os.Stderr
	}
	if cfg == nil {
		return New(Options{Fallback: fallback}), nil
	}

	level, err := ParseSeverity(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	logger := New(Options{
		Level:    level,
		Fallback: fallback,
		Color:    colorEnabled(cfg.Logging.Color, fallback),
	})
	if sink := strings.TrimSpace(cfg.Logging.Sink); sink != "" {
		if err := logger.SetSink(sink); err != nil {
			return nil, err
		}
	}
	return logger, nil
}

// SetLevel replaces the minimum severity.
func (l *Logger) SetLevel(level Severity) {
	l.level.Set(level.SlogLevel())
}

// Level reports the current minimum severity.
func (l *Logger) Level() Severity {
	return severityOf(l.level.Level())
}

// Enabled reports whether a record at level would be written.
func (l *Logger) Enabled(level Severity) bool {
	return level.SlogLevel() >= l.level.Level()
}

// SetSink redirects output to path, opened in append mode. The previous sink
// is closed on success. On failure the error is returned and the current
// destination stays active.
func (l *Logger) SetSink(path string) error {
	file, err := openSink(path)
	if err != nil {
		return err
	}

	l.mu.Lock()
	prev := l.sink
	l.sink = &fileSink{path: file.Name(), file: file, w: bufio.NewWriter(file)}
	l.mu.Unlock()

	if prev != nil {
		// Every record is flushed on write, so nothing is lost here.
		_ = prev.close()
	}
	return nil
}

// SinkPath returns the path of the active sink, or "" when writing to the
// fallback stream.
func (l *Logger) SinkPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink == nil {
		return ""
	}
	return l.sink.path
}

// Close flushes and releases the sink and reverts to the fallback stream.
// Calling Close without a sink is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink == nil {
		return nil
	}
	err := l.sink.close()
	l.sink = nil
	return err
}

// Slog returns a slog.Logger that renders through this logger.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.handler)
}

// Log emits a printf-style record at level.
func (l *Logger) Log(level Severity, format string, args ...any) {
	l.log(3, level, format, args...)
}

// LogDepth is Log with the caller attribution moved depth frames up the
// stack. LogDepth(0, ...) is equivalent to Log.
func (l *Logger) LogDepth(depth int, level Severity, format string, args ...any) {
	l.log(3+depth, level, format, args...)
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(format string, args ...any) { l.log(3, LevelTrace, format, args...) }

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, args ...any) { l.log(3, LevelDebug, format, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...any) { l.log(3, LevelInfo, format, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(format string, args ...any) { l.log(3, LevelWarn, format, args...) }

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...any) { l.log(3, LevelError, format, args...) }

func (l *Logger) log(skip int, level Severity, format string, args ...any) {
	if l == nil || !l.Enabled(level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	record := slog.NewRecord(l.now(), level.SlogLevel(), fmt.Sprintf(format, args...), pcs[0])
	// The token comes from level itself so undefined severities keep their
	// SEVERITY(n) name.
	_ = l.emit(level, l.handler.render(record))
}

// emit writes one rendered record. line holds everything after the level
// token, including the trailing newline.
func (l *Logger) emit(level Severity, line []byte) error {
	token := level.String()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sink != nil {
		return l.sink.write(token, line)
	}
	if l.color {
		token = colorizeToken(level, token)
	}
	buf := make([]byte, 0, len(token)+len(line))
	buf = append(buf, token...)
	buf = append(buf, line...)
	_, err := l.fallback.Write(buf)
	return err
}

func (s *fileSink) write(token string, line []byte) error {
	if _, err := s.w.WriteString(token); err != nil {
		return err
	}
	if _, err := s.w.Write(line); err != nil {
		return err
	}
	return s.w.Flush()
}

func (s *fileSink) close() error {
	return errors.Join(s.w.Flush(), s.file.Close())
}

func openSink(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("open log sink: empty path")
	}
	if err := ensureLogDir(trimmed); err != nil {
		return nil, fmt.Errorf("open log sink %s: %w", trimmed, err)
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log sink %s: %w", trimmed, err)
	}
	return file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
