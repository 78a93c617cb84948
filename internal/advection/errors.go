package advection

import "errors"

// ErrInvalidGrid is returned when a grid or step configuration cannot be solved.
var ErrInvalidGrid = errors.New("advection: invalid grid")
