package selector

import "errors"

// ErrUnknownItem is returned when selecting an item that is not part of the widget.
var ErrUnknownItem = errors.New("unknown item")

// ResourceHandle refers to an asset served by the asset collaborator, e.g. "/assets/milan.jpg".
type ResourceHandle string

// Item is one selectable entry. Items are fixed for the life of the process.
type Item struct {
	Name      string         `json:"name"`
	Attribute string         `json:"attribute"`
	Image     ResourceHandle `json:"image"`
	Sound     ResourceHandle `json:"sound"`
}

// Phase is the display phase of the selected item's detail view.
type Phase string

const (
	// PhaseHidden means the detail view is not rendered.
	PhaseHidden Phase = "hidden"
	// PhaseEntering means the detail view is rendered with its entrance animation.
	PhaseEntering Phase = "entering"
	// PhaseShown means the detail view is rendered at rest.
	PhaseShown Phase = "shown"
)

// Playback is a single fire-and-forget request to play an item's sound.
type Playback struct {
	ID    string         `json:"id"`
	Item  string         `json:"item"`
	Sound ResourceHandle `json:"sound"`
}

// Status is a snapshot of the widget.
type Status struct {
	Items    []Item `json:"items"`
	Selected *Item  `json:"selected,omitempty"`
	Phase    Phase  `json:"phase"`
}

// Visible reports whether the detail view of the selected item should be rendered.
func (s Status) Visible() bool {
	return s.Selected != nil && s.Phase != PhaseHidden
}

// DefaultItems are the three clubs shown by the widget.
func DefaultItems() []Item {
	return []Item{
		{Name: "AC Milan", Attribute: "Rød", Image: "/assets/milan.jpg", Sound: "/assets/milan.mp3"},
		{Name: "AS Roma", Attribute: "Grønn", Image: "/assets/roma.jpg", Sound: "/assets/roma.mp3"},
		{Name: "FC Inter", Attribute: "Blå", Image: "/assets/inter.jpg", Sound: "/assets/inter.mp3"},
	}
}
