package ui

import (
	"errors"
	"fmt"

	"github.com/ytget/muse/internal/model"
)

// ErrUnknownView is returned when navigating to a view that does not exist
var ErrUnknownView = errors.New("unknown view")

// Navigator holds the active screen. Any valid view is reachable from any other.
type Navigator struct {
	current  model.View
	onChange func(model.View)
}

// NewNavigator creates a navigator showing the archive
func NewNavigator() *Navigator {
	return &Navigator{current: model.ViewHome}
}

// Current returns the active view
func (n *Navigator) Current() model.View {
	return n.current
}

// SetOnChange registers the callback invoked after every navigation
func (n *Navigator) SetOnChange(fn func(model.View)) {
	n.onChange = fn
}

// Navigate switches to v and notifies the listener, also when v is already active
func (n *Navigator) Navigate(v model.View) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownView, string(v))
	}
	n.current = v
	if n.onChange != nil {
		n.onChange(v)
	}
	return nil
}
