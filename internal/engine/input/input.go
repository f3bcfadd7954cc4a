// Package input turns window events into per-tick scene input.
//
// It has no SDL dependency: the window package converts platform events
// into Event values, and the Accumulator folds them into a scene.Input.
package input

import "github.com/Faultbox/cubemerge/internal/scene"

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Action is a logical key binding.
type Action int

const (
	ActionNone Action = iota
	ActionMerge
	ActionRestart
	ActionQuit
)

// Button is a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// Event is a platform-independent input event.
type Event struct {
	Type   EventType
	Action Action // key events
	Button Button // mouse button events

	// Relative motion for EventMouseMove, scroll amount for EventMouseWheel.
	DX, DY float32

	Width, Height int // EventWindowResize
}

// Accumulator collects events between ticks.
type Accumulator struct {
	pending scene.Input
	held    map[Button]bool
	quit    bool
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{held: make(map[Button]bool)}
}

// Push records one event.
func (a *Accumulator) Push(e Event) {
	switch e.Type {
	case EventQuit:
		a.quit = true

	case EventWindowResize:
		a.pending.Width = e.Width
		a.pending.Height = e.Height

	case EventKeyDown:
		switch e.Action {
		case ActionMerge:
			a.command(scene.CommandMerge)
		case ActionRestart:
			a.command(scene.CommandRestart)
		case ActionQuit:
			a.quit = true
		}

	case EventMouseDown:
		a.held[e.Button] = true
		switch e.Button {
		case ButtonPrimary:
			a.command(scene.CommandSelectTexture)
		case ButtonSecondary:
			a.command(scene.CommandResetTexture)
		}

	case EventMouseUp:
		delete(a.held, e.Button)

	case EventMouseMove:
		if a.dragging() {
			a.pending.MouseDX += e.DX
			a.pending.MouseDY += e.DY
		}

	case EventMouseWheel:
		// Scrolling up (positive) zooms in.
		a.pending.Wheel -= e.DY
	}
}

// Flush returns the input gathered since the previous Flush and whether a
// quit was requested. Held buttons carry over.
func (a *Accumulator) Flush() (scene.Input, bool) {
	in := a.pending
	a.pending = scene.Input{}
	quit := a.quit
	a.quit = false
	return in, quit
}

// Dragging reports whether any mouse button is held.
func (a *Accumulator) Dragging() bool {
	return a.dragging()
}

func (a *Accumulator) dragging() bool {
	return len(a.held) > 0
}

func (a *Accumulator) command(c scene.Command) {
	a.pending.Commands = append(a.pending.Commands, c)
}
