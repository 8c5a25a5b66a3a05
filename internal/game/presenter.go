package game

import "github.com/jwebster45206/room-engine/pkg/state"

// Presenter is the engine's only window to the outside world. The core
// performs no I/O except through these four calls; implementations live in
// cmd/game (terminal UI, plain stdio) and in the tests (scripted).
type Presenter interface {
	// DisplayText shows lines of narrative or feedback, in order.
	DisplayText(lines ...string)

	// DisplayImage shows the illustration for the current room. The ref is
	// whatever the world definition carries; rendering is the presenter's
	// problem.
	DisplayImage(ref string)

	// PromptLine blocks until the player enters one line of text. An error
	// means input is gone for good (EOF, UI torn down) and is treated as a
	// quit.
	PromptLine() (string, error)

	// WaitForAcknowledge blocks until the player presses Enter on an empty
	// line. Re-prompting on non-empty input is the presenter's job.
	WaitForAcknowledge() error
}

// StateNotifier is an optional presenter extension. When implemented, the
// engine pushes a state snapshot after every turn, for metadata panels and
// the like.
type StateNotifier interface {
	StateChanged(gs state.GameState)
}
