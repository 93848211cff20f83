package coaction

import "fmt"

// Mode is a named (window, threshold) parameterization of the engine.
type Mode struct {
	Name string
	// WindowSeconds is the maximum timestamp gap for two same-key events to co-occur.
	WindowSeconds int64
	// MinRepeat is the minimum accumulated count for an edge to be kept.
	MinRepeat int64
}

// Presets for the two standard analyses: near-simultaneous (bot-like) coaction
// and long-span shared engagement.
var (
	BotMode      = Mode{Name: "bot", WindowSeconds: 1, MinRepeat: 5}
	IdeologyMode = Mode{Name: "ideology", WindowSeconds: 600, MinRepeat: 25}
)

// String renders the mode as "name(s=W,r=R)".
func (m Mode) String() string {
	return fmt.Sprintf("%s(s=%d,r=%d)", m.Name, m.WindowSeconds, m.MinRepeat)
}
