package logging

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strconv"
)

// lineHandler renders slog records in the debuglog line format and hands
// them to the owning Logger for output.
type lineHandler struct {
	logger *Logger
	attrs  []slog.Attr
	groups []string
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.logger.level.Level()
}

// Handle renders records from the slog bridge. Levels between or beyond the
// defined severities take the token of the nearest one.
func (h *lineHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.logger.level.Level() {
		return nil
	}
	return h.logger.emit(tokenSeverity(record.Level), h.render(record))
}

// render formats everything after the level token, including the newline.
func (h *lineHandler) render(record slog.Record) []byte {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = h.logger.now()
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	flattenAttrs(&kvs, nil, h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&kvs, h.groups, attr)
		return true
	})

	var buf bytes.Buffer
	buf.Grow(64 + len(record.Message) + len(kvs)*24)

	buf.WriteString(" [")
	buf.WriteString(FormatTimestamp(timestamp))
	buf.WriteString("] (")
	if src := record.Source(); src != nil {
		buf.WriteString(filepath.Base(src.File))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(src.Line))
	} else {
		buf.WriteString("unknown:0")
	}
	buf.WriteString(") ")
	buf.WriteString(record.Message)

	for _, kv := range kvs {
		buf.WriteByte(' ')
		buf.WriteString(kv.key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(kv.value))
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	// Attributes bound here belong to the groups open at this point.
	scoped := make([]kv, 0, len(attrs))
	flattenAttrs(&scoped, h.groups, attrs)
	for _, kv := range scoped {
		clone.attrs = append(clone.attrs, slog.Attr{Key: kv.key, Value: kv.value})
	}
	return clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *lineHandler) clone() *lineHandler {
	clone := &lineHandler{logger: h.logger}
	if len(h.attrs) > 0 {
		clone.attrs = make([]slog.Attr, len(h.attrs))
		copy(clone.attrs, h.attrs)
	}
	if len(h.groups) > 0 {
		clone.groups = make([]string, len(h.groups))
		copy(clone.groups, h.groups)
	}
	return clone
}
