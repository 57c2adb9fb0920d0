package async

import "errors"

var (
	ErrTimeout   = errors.New("async: timed out waiting for future")
	ErrNoFutures = errors.New("async: no futures given")
	ErrPanic     = errors.New("async: function panicked")
)
