package preview

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

// Tab is one of the three views of a rendered email.
type Tab string

const (
	TabPreview Tab = "preview"
	TabHTML    Tab = "html"
	TabText    Tab = "text"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabPreview, TabHTML, TabText}

func ParseTab(s string) (Tab, error) {
	t := Tab(s)
	if !slices.Contains(Tabs, t) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
	}
	return t, nil
}

// Label is the tab's caption.
func (t Tab) Label() string {
	switch t {
	case TabHTML:
		return "HTML"
	case TabText:
		return "Plain text"
	}
	return "Preview"
}

// State is a copy of the shell's view state. It is safe to read after the
// shell moves on.
type State struct {
	Templates []registry.Descriptor
	Groups    []registry.Group
	Locales   []string

	SelectedID string
	Locale     string
	Tab        Tab

	// LocaleChosen is set once a locale has been picked explicitly. Until
	// then the page adopts the browser's preferred locale.
	LocaleChosen bool

	// Seq identifies the most recent render request.
	Seq        uint64
	Rendering  bool
	Refreshing bool

	// Email is the result for (SelectedID, Locale); nil while rendering or
	// after a failure.
	Email *render.Email
	// Err is the render failure for the current selection.
	Err error
	// LoadErr is the last discovery failure. The template list keeps the
	// previous snapshot.
	LoadErr error
}

// Selected returns the descriptor of the selected template.
func (s State) Selected() (registry.Descriptor, bool) {
	for _, d := range s.Templates {
		if d.ID == s.SelectedID {
			return d, true
		}
	}
	return registry.Descriptor{}, false
}

// EventKind names what changed.
type EventKind string

const (
	EventTemplates EventKind = "templates"
	EventSelection EventKind = "selection"
	EventRendered  EventKind = "rendered"
	EventTab       EventKind = "tab"
	EventSent      EventKind = "sent"
)

// Event announces a state change. Subscribers read the new state through
// Shell.State.
type Event struct {
	Kind EventKind
	Seq  uint64
}
