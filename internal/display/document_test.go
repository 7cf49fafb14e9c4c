package display

import (
	"errors"
	"testing"
)

func TestDocument_SetAndGetText(t *testing.T) {
	doc := NewDocument("clock")

	if err := doc.SetTextContent("clock", "12:00:00"); err != nil {
		t.Fatalf("SetTextContent() error = %v", err)
	}

	got, err := doc.TextContent("clock")
	if err != nil {
		t.Fatalf("TextContent() error = %v", err)
	}
	if got != "12:00:00" {
		t.Errorf("TextContent() = %q, want 12:00:00", got)
	}
}

func TestDocument_MissingElement(t *testing.T) {
	doc := NewDocument()

	if err := doc.SetTextContent("clock", "12:00:00"); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("SetTextContent() error = %v, want ErrElementNotFound", err)
	}
	if _, err := doc.TextContent("clock"); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("TextContent() error = %v, want ErrElementNotFound", err)
	}
}

func TestDocument_TargetLooksUpOnEveryWrite(t *testing.T) {
	doc := NewDocument("clock")
	target := doc.Target("clock")

	if err := target.SetText("01:02:03"); err != nil {
		t.Fatalf("SetText() error = %v", err)
	}

	doc.RemoveElement("clock")
	if err := target.SetText("01:02:04"); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("SetText() after removal error = %v, want ErrElementNotFound", err)
	}

	doc.AddElement("clock")
	if err := target.SetText("01:02:05"); err != nil {
		t.Errorf("SetText() after re-adding error = %v", err)
	}
}

func TestDocument_AddElementKeepsText(t *testing.T) {
	doc := NewDocument("clock")
	_ = doc.SetTextContent("clock", "keep")

	doc.AddElement("clock")

	if got, _ := doc.TextContent("clock"); got != "keep" {
		t.Errorf("TextContent() = %q, want keep", got)
	}
}

func TestDocument_LoadRunsHandlersOnce(t *testing.T) {
	doc := NewDocument()
	var order []int

	doc.OnLoad(func() { order = append(order, 1) })
	doc.OnLoad(func() { order = append(order, 2) })

	if doc.Loaded() {
		t.Fatal("document should not be loaded yet")
	}
	if len(order) != 0 {
		t.Fatalf("handlers ran before Load: %v", order)
	}

	doc.Load()
	doc.Load()

	if !doc.Loaded() {
		t.Error("document should be loaded")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handler order = %v, want [1 2]", order)
	}
}

func TestDocument_OnLoadAfterLoadRunsImmediately(t *testing.T) {
	doc := NewDocument()
	doc.Load()

	ran := false
	doc.OnLoad(func() { ran = true })

	if !ran {
		t.Error("handler registered after load should run immediately")
	}
}

func TestDocument_HandlerCanWriteBack(t *testing.T) {
	doc := NewDocument("clock")
	doc.OnLoad(func() {
		if err := doc.SetTextContent("clock", "loaded"); err != nil {
			t.Errorf("SetTextContent() in handler error = %v", err)
		}
	})

	doc.Load()

	if got, _ := doc.TextContent("clock"); got != "loaded" {
		t.Errorf("TextContent() = %q, want loaded", got)
	}
}
