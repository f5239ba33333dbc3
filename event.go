package quad

// EventKind discriminates window events delivered to the run loop.
type EventKind uint8

const (
	// EventOther is an event the run loop ignores.
	EventOther EventKind = iota

	// EventClose is a window close request.
	EventClose

	// EventKey is a key press or release.
	EventKey

	// EventResized is a framebuffer size change, in physical pixels.
	EventResized

	// EventScaleChanged is a monitor content scale change. It carries
	// the resulting framebuffer size and is handled like a resize.
	EventScaleChanged

	// EventRedraw means the platform wants the window contents redrawn.
	EventRedraw
)

var eventKindNames = [...]string{
	EventOther:        "Other",
	EventClose:        "Close",
	EventKey:          "Key",
	EventResized:      "Resized",
	EventScaleChanged: "ScaleChanged",
	EventRedraw:       "Redraw",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// Key identifies a keyboard key. Only Escape is distinguished; every
// other key maps to KeyOther.
type Key uint8

const (
	// KeyOther is any key the program does not act on.
	KeyOther Key = iota

	// KeyEscape is the Escape key. Pressing it exits the program.
	KeyEscape
)

// Event is one window notification. Which fields are meaningful depends
// on Kind: Width and Height for EventResized and EventScaleChanged, Key
// and Pressed for EventKey.
type Event struct {
	Kind    EventKind
	Width   uint32
	Height  uint32
	Key     Key
	Pressed bool
}
