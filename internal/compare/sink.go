package compare

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink receives one formatted line per compared pair.
type Sink interface {
	Emit(line string) error
}

// WriterSink writes each line followed by a newline to W.
type WriterSink struct {
	W io.Writer
}

// Emit implements Sink.
func (s *WriterSink) Emit(line string) error {
	_, err := fmt.Fprintln(s.W, line)
	return err
}

// FileSink writes lines to a file that is truncated when opened.
type FileSink struct {
	file *os.File
}

// NewFileSink creates or truncates path.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return &FileSink{file: f}, nil
}

// Emit implements Sink.
func (s *FileSink) Emit(line string) error {
	if _, err := fmt.Fprintln(s.file, line); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	return s.file.Close()
}

// MultiSink emits every line to each sink in order and stops at the first
// error.
type MultiSink []Sink

// Emit implements Sink.
func (m MultiSink) Emit(line string) error {
	for _, s := range m {
		if err := s.Emit(line); err != nil {
			return err
		}
	}
	return nil
}

// CollectSink keeps emitted lines in memory.
type CollectSink struct {
	mu    sync.Mutex
	lines []string
}

// Emit implements Sink.
func (c *CollectSink) Emit(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	return nil
}

// Lines returns a copy of the collected lines.
func (c *CollectSink) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}
