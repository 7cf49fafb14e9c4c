package display

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriterTarget_RewritesLine(t *testing.T) {
	var buf bytes.Buffer
	target := NewWriterTarget(&buf)

	for _, text := range []string{"08:00:00", "08:00:01"} {
		if err := target.SetText(text); err != nil {
			t.Fatalf("SetText() error = %v", err)
		}
	}

	want := "\r08:00:00\r08:00:01"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriterTarget_WriteError(t *testing.T) {
	target := NewWriterTarget(failingWriter{})

	if err := target.SetText("08:00:00"); err == nil {
		t.Error("SetText() error = nil, want error")
	}
}
