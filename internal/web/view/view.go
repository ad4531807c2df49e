// Package view holds the per-request render state of a page.
package view

import (
	"errors"   // Sentinel errors
	"fmt"      // Error wrapping
	"net/http" // HTTP status codes
)

// State is the render state of a page
type State int

const (
	Loading State = iota // Initial state
	Error                // Terminal: loader failed
	Content              // Terminal: loader succeeded
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Content:
		return "content"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when a view already left Loading
var ErrInvalidTransition = errors.New("invalid view transition")

// View is the state of one page render. A new request creates a new View.
type View[T any] struct {
	state   State
	data    T
	message string
	status  int
}

// New returns a view in the Loading state
func New[T any]() *View[T] {
	return &View[T]{state: Loading, status: http.StatusOK}
}

// Succeed moves the view to Content
func (v *View[T]) Succeed(data T) error {
	if v.state != Loading {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.state, Content)
	}
	v.state = Content
	v.data = data
	v.status = http.StatusOK
	return nil
}

// Fail moves the view to Error with a user-facing message and HTTP status
func (v *View[T]) Fail(status int, message string) error {
	if v.state != Loading {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, v.state, Error)
	}
	v.state = Error
	v.message = message
	v.status = status
	return nil
}

func (v *View[T]) State() State    { return v.state }
func (v *View[T]) Data() T         { return v.data }
func (v *View[T]) Message() string { return v.message }
func (v *View[T]) Status() int     { return v.status }
