//go:build js && wasm

package display

import (
	"fmt"
	"syscall/js"
)

// DOMTarget writes into the innerText of a browser element
type DOMTarget struct {
	id string
}

// NewDOMTarget creates a DOMTarget for the element with the given id
func NewDOMTarget(id string) *DOMTarget {
	return &DOMTarget{id: id}
}

// SetText implements Target. The element is resolved on every call.
func (t *DOMTarget) SetText(text string) error {
	el := js.Global().Get("document").Call("getElementById", t.id)
	if el.IsNull() || el.IsUndefined() {
		return fmt.Errorf("%w: %q", ErrElementNotFound, t.id)
	}
	el.Set("innerText", text)
	return nil
}

// OnWindowLoad runs fn once the page has finished loading. If it already
// has, fn runs immediately.
func OnWindowLoad(fn func()) {
	if js.Global().Get("document").Get("readyState").String() == "complete" {
		fn()
		return
	}

	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "load", cb, map[string]any{"once": true})
}
