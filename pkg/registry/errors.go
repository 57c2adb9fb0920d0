package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad is matched by every *LoadError.
	ErrLoad = errors.New("registry: failed to load template")

	ErrNilFactory = errors.New("template source has no factory")
	ErrNoContent  = errors.New("template has no content function")
	ErrNotLoaded  = errors.New("registry: templates not loaded")

	// ErrRefreshInProgress is returned, together with the current snapshot,
	// by a Load or Refresh dropped because another pass is running.
	ErrRefreshInProgress = errors.New("registry: discovery already in progress")
)

// LoadError reports the manifest entry that could not be resolved.
type LoadError struct {
	Index  int
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("registry: load template #%d (%s): %v", e.Index+1, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }
