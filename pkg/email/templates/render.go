package templates

import (
	"context"
	"errors"
	"strings"

	"github.com/a-h/templ"
)

// ErrNilComponent is returned when Render is given no component.
var ErrNilComponent = errors.New("templates: nil component")

// Render renders tpl to a string.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	if tpl == nil {
		return "", ErrNilComponent
	}
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
