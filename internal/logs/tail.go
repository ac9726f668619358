package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"debuglog/internal/logging"
)

const (
	pollInterval   = 250 * time.Millisecond
	readBufferSize = 64 * 1024
)

// TailOptions controls a Tail call. A negative Offset means "start from the
// last Limit lines"; otherwise reading resumes at Offset bytes.
type TailOptions struct {
	Offset int64
	Limit  int
	Follow bool
	Wait   time.Duration
	Min    logging.Severity
}

// TailResult carries the lines read and the offset to resume from.
type TailResult struct {
	Lines  []string
	Offset int64
}

// Tail reads lines from the sink file at path. A missing file yields no lines
// and offset zero so a follower can wait for the sink to be created.
func Tail(ctx context.Context, path string, opts TailOptions) (TailResult, error) {
	result := TailResult{Offset: opts.Offset}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Offset = 0
			return result, nil
		}
		return result, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return result, fmt.Errorf("log path %q is a directory", path)
	}

	if opts.Wait < 0 {
		opts.Wait = 0
	}

	if opts.Offset < 0 {
		lines, offset, err := readLastLines(path, opts.Limit, newSeverityFilter(opts.Min))
		if err != nil {
			return result, err
		}
		result.Lines = lines
		result.Offset = offset
		if opts.Follow && opts.Wait > 0 && len(lines) == 0 {
			return waitForLines(ctx, path, offset, opts.Wait, opts.Min)
		}
		return result, nil
	}

	size := info.Size()
	offset := opts.Offset
	if offset > size {
		// The sink was truncated or replaced; start over from its end.
		offset = size
	}

	lines, newOffset, err := readForward(path, offset, newSeverityFilter(opts.Min))
	if err != nil {
		return result, err
	}
	result.Lines = lines
	result.Offset = newOffset

	if opts.Follow && opts.Wait > 0 && len(lines) == 0 {
		return waitForLines(ctx, path, newOffset, opts.Wait, opts.Min)
	}
	return result, nil
}

func readLastLines(path string, limit int, filter *severityFilter) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if limit <= 0 {
		offset, err := scanLines(file, 0, func(string) {})
		if err != nil {
			return nil, 0, err
		}
		return nil, offset, nil
	}

	ring := make([]string, limit)
	count, idx := 0, 0
	offset, err := scanLines(file, 0, func(line string) {
		if !filter.accept(line) {
			return
		}
		ring[idx] = line
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
	})
	if err != nil {
		return nil, 0, err
	}

	lines := make([]string, count)
	if count == limit {
		for i := range count {
			lines[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, nil
}

func readForward(path string, offset int64, filter *severityFilter) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("seek log file: %w", err)
	}

	var lines []string
	newOffset, err := scanLines(file, offset, func(line string) {
		if filter.accept(line) {
			lines = append(lines, line)
		}
	})
	if err != nil {
		return nil, 0, err
	}
	return lines, newOffset, nil
}

// scanLines calls fn for every complete line in r and returns offset advanced
// past the last newline. A trailing partial line is left for the next read.
func scanLines(r io.Reader, offset int64, fn func(line string)) (int64, error) {
	reader := bufio.NewReaderSize(r, readBufferSize)
	for {
		chunk, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return offset, nil
		}
		if err != nil {
			return offset, fmt.Errorf("read log file: %w", err)
		}
		offset += int64(len(chunk))
		fn(strings.TrimSuffix(chunk[:len(chunk)-1], "\r"))
	}
}

func waitForLines(ctx context.Context, path string, offset int64, wait time.Duration, min logging.Severity) (TailResult, error) {
	deadline := time.Now().Add(wait)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	result := TailResult{Offset: offset}
	for {
		lines, newOffset, err := readForward(path, offset, newSeverityFilter(min))
		if err != nil {
			return result, err
		}
		offset = newOffset
		result.Offset = newOffset
		if len(lines) > 0 {
			result.Lines = lines
			return result, nil
		}
		if time.Now().After(deadline) {
			return result, nil
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-ticker.C:
		}
	}
}
