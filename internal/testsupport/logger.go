package testsupport

import (
	"bytes"
	"testing"
	"time"

	"debuglog/internal/logging"
)

// FixedTime is the clock reading stamped on records from NewLogger.
var FixedTime = time.Date(2024, time.March, 1, 10, 15, 22, 0, time.Local)

// FixedTimestamp is FixedTime in the rendered line layout.
const FixedTimestamp = "2024-03-01 10:15:22"

// NewLogger returns a logger that writes to the returned buffer at the given
// minimum, with a frozen clock. Any sink opened on it is closed at cleanup.
func NewLogger(t testing.TB, level logging.Severity) (*logging.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := logging.New(logging.Options{
		Level:    level,
		Fallback: &buf,
		Clock:    func() time.Time { return FixedTime },
	})
	t.Cleanup(func() {
		if err := logger.Close(); err != nil {
			t.Errorf("close logger: %v", err)
		}
	})
	return logger, &buf
}
