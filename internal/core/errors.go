package core

import "errors"

// ErrEmptyStack is returned when a navigation request would remove every screen.
// Drivers treat it as a request to quit.
var ErrEmptyStack = errors.New("navigation would empty the state stack")
