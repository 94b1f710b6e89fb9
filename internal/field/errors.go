package field

import "errors"

// ErrInvalidArgument reports a particle count that is not a positive integer.
var ErrInvalidArgument = errors.New("invalid argument")
