package render

import (
	"errors"
	"fmt"
)

var (
	// ErrRender is matched by every *RenderError.
	ErrRender = errors.New("render: failed to render template")

	ErrEmptyContent   = errors.New("template produced no content")
	ErrComponentPanic = errors.New("template component panicked")
)

// RenderError carries the template and locale of a failed render.
type RenderError struct {
	TemplateID string
	Locale     string
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: template %s (locale %q): %v", e.TemplateID, e.Locale, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRender }
