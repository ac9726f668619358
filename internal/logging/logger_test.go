package logging_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"debuglog/internal/config"
	"debuglog/internal/logging"
	"debuglog/internal/testsupport"
)

func TestLevelFiltering(t *testing.T) {
	for _, minimum := range logging.Severities() {
		for _, level := range logging.Severities() {
			t.Run(minimum.String()+"/"+level.String(), func(t *testing.T) {
				logger, buf := testsupport.NewLogger(t, minimum)
				logger.Log(level, "probe")

				emitted := buf.Len() > 0
				want := level >= minimum
				if emitted != want {
					t.Fatalf("minimum=%s level=%s: emitted=%v want %v (output %q)", minimum, level, emitted, want, buf.String())
				}
				if logger.Enabled(level) != want {
					t.Fatalf("Enabled(%s) under %s = %v, want %v", level, minimum, !want, want)
				}
			})
		}
	}
}

func TestLogRendersExactLine(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelTrace)

	_, file, line, _ := runtime.Caller(0)
	logger.Info("hello %s", "world")

	want := fmt.Sprintf("INFO [%s] (%s:%d) hello world\n", testsupport.FixedTimestamp, filepath.Base(file), line+1)
	if got := buf.String(); got != want {
		t.Fatalf("unexpected line: got %q want %q", got, want)
	}
}

func TestWrappersUseFixedSeverity(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelTrace)

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	lines := testsupport.SplitLines(buf.String())
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), buf.String())
	}
	for i, level := range logging.Severities() {
		if !strings.HasPrefix(lines[i], level.String()+" [") {
			t.Fatalf("line %d: expected %s token, got %q", i, level, lines[i])
		}
		if !strings.Contains(lines[i], "(logger_test.go:") {
			t.Fatalf("line %d: expected caller attribution to this file, got %q", i, lines[i])
		}
	}
}

func TestLogDepthAttributesOuterCaller(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelTrace)

	helper := func() {
		logger.LogDepth(1, logging.LevelWarn, "from helper")
	}
	_, _, line, _ := runtime.Caller(0)
	helper()

	want := fmt.Sprintf("(logger_test.go:%d) from helper", line+1)
	if !strings.Contains(buf.String(), want) {
		t.Fatalf("expected %q in %q", want, buf.String())
	}
}

func TestSetLevelTakesEffectImmediately(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelTrace)

	logger.SetLevel(logging.LevelWarn)
	if logger.Level() != logging.LevelWarn {
		t.Fatalf("Level() = %s, want WARN", logger.Level())
	}
	logger.Info("suppressed")
	logger.Error("kept")
	logger.SetLevel(logging.LevelDebug)
	logger.Debug("kept again")

	lines := testsupport.SplitLines(buf.String())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "suppressed") {
		t.Fatalf("record below minimum was written: %q", buf.String())
	}
}

type countingStringer struct {
	calls int
}

func (c *countingStringer) String() string {
	c.calls++
	return "value"
}

func TestSuppressedRecordsSkipFormatting(t *testing.T) {
	logger, _ := testsupport.NewLogger(t, logging.LevelWarn)

	arg := &countingStringer{}
	logger.Debug("expensive %v", arg)
	if arg.calls != 0 {
		t.Fatalf("expected no formatting for suppressed record, String called %d times", arg.calls)
	}
	logger.Warn("expensive %v", arg)
	if arg.calls != 1 {
		t.Fatalf("expected one formatting call for emitted record, got %d", arg.calls)
	}
}

func TestSetSinkRedirectsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	first, fallback := testsupport.NewLogger(t, logging.LevelTrace)
	if err := first.SetSink(path); err != nil {
		t.Fatalf("SetSink returned error: %v", err)
	}
	if first.SinkPath() != path {
		t.Fatalf("SinkPath() = %q, want %q", first.SinkPath(), path)
	}
	first.Info("first run")
	if fallback.Len() != 0 {
		t.Fatalf("expected nothing on fallback stream, got %q", fallback.String())
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	second, _ := testsupport.NewLogger(t, logging.LevelTrace)
	if err := second.SetSink(path); err != nil {
		t.Fatalf("SetSink (reopen) returned error: %v", err)
	}
	second.Warn("second run")

	lines := testsupport.ReadLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("expected 2 appended lines, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "INFO ") || !strings.HasSuffix(lines[0], " first run") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "WARN ") || !strings.HasSuffix(lines[1], " second run") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestSetSinkFailureKeepsCurrentDestination(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.log")

	logger, fallback := testsupport.NewLogger(t, logging.LevelTrace)

	// A directory cannot be opened for writing.
	err := logger.SetSink(dir)
	if err == nil {
		t.Fatal("expected error opening a directory as sink")
	}
	if !strings.Contains(err.Error(), "open log sink") {
		t.Fatalf("unexpected error text: %v", err)
	}
	logger.Info("still on fallback")
	if !strings.Contains(fallback.String(), "still on fallback") {
		t.Fatalf("expected record on fallback after failed SetSink, got %q", fallback.String())
	}

	if err := logger.SetSink(good); err != nil {
		t.Fatalf("SetSink returned error: %v", err)
	}
	if err := logger.SetSink(dir); err == nil {
		t.Fatal("expected error on second failing SetSink")
	}
	if logger.SinkPath() != good {
		t.Fatalf("SinkPath() = %q, want previous sink %q", logger.SinkPath(), good)
	}
	logger.Info("still on good sink")

	lines := testsupport.ReadLines(t, good)
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "still on good sink") {
		t.Fatalf("expected record in previous sink, got %q", lines)
	}
}

func TestSetSinkRejectsEmptyPath(t *testing.T) {
	logger, _ := testsupport.NewLogger(t, logging.LevelTrace)
	if err := logger.SetSink("  "); err == nil {
		t.Fatal("expected error for blank sink path")
	}
	if logger.SinkPath() != "" {
		t.Fatalf("expected no sink, got %q", logger.SinkPath())
	}
}

func TestCloseRevertsToFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, fallback := testsupport.NewLogger(t, logging.LevelTrace)

	if err := logger.SetSink(path); err != nil {
		t.Fatalf("SetSink returned error: %v", err)
	}
	logger.Info("to file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
	logger.Info("to fallback")

	if logger.SinkPath() != "" {
		t.Fatalf("expected sink cleared after Close, got %q", logger.SinkPath())
	}
	if !strings.Contains(fallback.String(), "to fallback") || strings.Contains(fallback.String(), "to file") {
		t.Fatalf("unexpected fallback content %q", fallback.String())
	}
	if lines := testsupport.ReadLines(t, path); len(lines) != 1 {
		t.Fatalf("expected 1 line in sink, got %q", lines)
	}
}

func TestColorOnlyAppliesToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Fallback: &buf, Color: true})

	logger.Error("boom")
	if !strings.HasPrefix(buf.String(), "\x1b[31mERROR\x1b[0m [") {
		t.Fatalf("expected coloured level token, got %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "plain.log")
	if err := logger.SetSink(path); err != nil {
		t.Fatalf("SetSink returned error: %v", err)
	}
	logger.Error("boom")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sink: %v", err)
	}
	if bytes.ContainsRune(data, '\x1b') {
		t.Fatalf("expected no escapes in file sink, got %q", data)
	}
}

func TestSlogBridgeRendersAttributes(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelTrace)

	slogger := logger.Slog().With("component", "http").WithGroup("req")
	slogger.Info("served", "status", 200, "path", "/a b")

	pattern := regexp.MustCompile(`^INFO \[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \(logger_test\.go:\d+\) served component=http req\.status=200 req\.path="/a b"\n$`)
	if !pattern.MatchString(buf.String()) {
		t.Fatalf("unexpected slog line %q", buf.String())
	}
}

func TestSlogBridgeHonoursMinimum(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelWarn)
	slogger := logger.Slog()

	slogger.Info("dropped")
	slogger.Warn("kept")
	if lines := testsupport.SplitLines(buf.String()); len(lines) != 1 || !strings.HasPrefix(lines[0], "WARN ") {
		t.Fatalf("expected a single WARN line, got %q", buf.String())
	}
}

func TestUndefinedSeverityKeepsItsName(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelTrace)

	_, file, line, _ := runtime.Caller(0)
	logger.Log(logging.Severity(42), "odd")

	want := fmt.Sprintf("SEVERITY(42) [%s] (%s:%d) odd\n", testsupport.FixedTimestamp, filepath.Base(file), line+1)
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestSlogBridgeClampsLevelsBeyondError(t *testing.T) {
	logger, buf := testsupport.NewLogger(t, logging.LevelTrace)

	logger.Slog().Log(context.Background(), slog.Level(12), "beyond")
	if !strings.HasPrefix(buf.String(), "ERROR [") {
		t.Fatalf("expected clamped ERROR token, got %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	for _, level := range logging.Severities() {
		if logger.Enabled(level) {
			t.Fatalf("nop logger should not enable %s", level)
		}
	}
	logger.Error("nothing happens")
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "warn"
	cfg.Logging.Color = "never"
	cfg.Logging.Sink = filepath.Join(t.TempDir(), "cfg.log")

	var fallback bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &fallback)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer logger.Close()

	if logger.Level() != logging.LevelWarn {
		t.Fatalf("Level() = %s, want WARN", logger.Level())
	}
	logger.Info("dropped")
	logger.Error("kept")

	lines := testsupport.ReadLines(t, cfg.Logging.Sink)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "ERROR ") {
		t.Fatalf("expected a single ERROR line in sink, got %q", lines)
	}
	if fallback.Len() != 0 {
		t.Fatalf("expected empty fallback, got %q", fallback.String())
	}
}

func TestNewFromConfigColorAlways(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Color = "always"

	var fallback bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &fallback)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("tinted")
	if !strings.HasPrefix(fallback.String(), "\x1b[33mWARN\x1b[0m") {
		t.Fatalf("expected coloured token, got %q", fallback.String())
	}
}

func TestNewFromConfigRejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "verbose"

	if _, err := logging.NewFromConfig(&cfg, nil); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewFromConfigSinkFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Sink = t.TempDir()

	if _, err := logging.NewFromConfig(&cfg, nil); err == nil {
		t.Fatal("expected error when sink cannot be opened")
	}
}
