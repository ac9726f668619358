package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
)

func colorizeToken(level Severity, token string) string {
	color := severityColor(level)
	if color == "" {
		return token
	}
	return color + token + ansiReset
}

func severityColor(level Severity) string {
	switch level {
	case LevelTrace:
		return ansiMagenta
	case LevelDebug:
		return ansiBlue
	case LevelInfo:
		return ansiGreen
	case LevelWarn:
		return ansiYellow
	case LevelError:
		return ansiRed
	default:
		return ""
	}
}

// colorEnabled resolves a config colour mode against the fallback writer.
// Unknown modes behave like "auto".
func colorEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(w)
	}
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
