package scene

// Command is a discrete user request.
type Command int

const (
	CommandMerge         Command = iota + 1 // merge key
	CommandRestart                          // restart key
	CommandSelectTexture                    // primary click
	CommandResetTexture                     // secondary click
)

func (c Command) String() string {
	switch c {
	case CommandMerge:
		return "merge"
	case CommandRestart:
		return "restart"
	case CommandSelectTexture:
		return "select-texture"
	case CommandResetTexture:
		return "reset-texture"
	default:
		return "unknown"
	}
}

// Input is everything the input layer gathered since the previous tick.
type Input struct {
	MouseDX, MouseDY float32 // drag delta in pixels
	Wheel            float32 // positive zooms out

	// Viewport size after a resize; zero when the window did not change.
	Width, Height int

	Commands []Command // in arrival order
}
