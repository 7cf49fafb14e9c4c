package display

import (
	"fmt"
	"sync"
)

// Document is an in-memory host page: a set of text elements keyed by id
// and a load event that fires once.
type Document struct {
	mu       sync.RWMutex
	elements map[string]string
	loaded   bool
	onLoad   []func()
}

// NewDocument creates a document containing empty elements with the given ids
func NewDocument(ids ...string) *Document {
	d := &Document{
		elements: make(map[string]string, len(ids)),
	}
	for _, id := range ids {
		d.elements[id] = ""
	}
	return d
}

// AddElement inserts an empty element. Existing elements are left untouched.
func (d *Document) AddElement(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		d.elements[id] = ""
	}
}

// RemoveElement deletes an element
func (d *Document) RemoveElement(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, id)
}

// SetTextContent replaces the text of the element with the given id
func (d *Document) SetTextContent(id, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		return fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	d.elements[id] = text
	return nil
}

// TextContent returns the text of the element with the given id
func (d *Document) TextContent(id string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	text, ok := d.elements[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	return text, nil
}

// Target returns a Target writing into the element with the given id.
// The element is looked up on every write.
func (d *Document) Target(id string) Target {
	return TargetFunc(func(text string) error {
		return d.SetTextContent(id, text)
	})
}

// OnLoad registers fn to run when the document finishes loading.
// If the document has already loaded, fn runs immediately.
func (d *Document) OnLoad(fn func()) {
	d.mu.Lock()
	if d.loaded {
		d.mu.Unlock()
		fn()
		return
	}
	d.onLoad = append(d.onLoad, fn)
	d.mu.Unlock()
}

// Load marks the document as loaded and runs the registered handlers in
// registration order. Subsequent calls do nothing.
func (d *Document) Load() {
	d.mu.Lock()
	if d.loaded {
		d.mu.Unlock()
		return
	}
	d.loaded = true
	handlers := d.onLoad
	d.onLoad = nil
	d.mu.Unlock()

	// Handlers run without the lock held; they usually write back into the document.
	for _, fn := range handlers {
		fn()
	}
}

// Loaded reports whether Load has been called
func (d *Document) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}
