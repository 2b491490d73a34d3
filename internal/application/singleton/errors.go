package singleton

import "errors"

// ErrInstanceUnavailable is returned when neither the finder nor the factory
// can produce an instance of the requested type.
var ErrInstanceUnavailable = errors.New("singleton: instance unavailable")
