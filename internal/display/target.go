package display

import "errors"

// ErrElementNotFound is returned when the display element does not exist in the host document
var ErrElementNotFound = errors.New("display element not found")

// Target receives the text to show
type Target interface {
	SetText(text string) error
}

// TargetFunc adapts a plain function to a Target
type TargetFunc func(text string) error

// SetText implements Target
func (f TargetFunc) SetText(text string) error {
	return f(text)
}
