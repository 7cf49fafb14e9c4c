package display

import (
	"fmt"
	"io"
	"sync"
)

// WriterTarget redraws a single line on w, typically a terminal
type WriterTarget struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterTarget creates a WriterTarget
func NewWriterTarget(w io.Writer) *WriterTarget {
	return &WriterTarget{w: w}
}

// SetText implements Target by returning the cursor to the start of the line and overwriting it
func (t *WriterTarget) SetText(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := fmt.Fprintf(t.w, "\r%s", text); err != nil {
		return fmt.Errorf("failed to write display text: %w", err)
	}
	return nil
}
