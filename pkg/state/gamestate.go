package state

import "github.com/google/uuid"

// Outcome is the terminal state of a session. An empty outcome means the
// game is still being played.
type Outcome string

const (
	OutcomePlaying Outcome = ""
	OutcomeWon     Outcome = "won"
	OutcomeQuit    Outcome = "quit"
)

// GameState is a snapshot of the current session, mirrored out to the
// presenter for its metadata panel. The engine owns the live room graph;
// this holds only the display-facing view of where the player is.
type GameState struct {
	ID        uuid.UUID `json:"id"` // Unique ID per session
	World     string    `json:"world,omitempty"`
	Location  string    `json:"location,omitempty"`
	Turns     int       `json:"turns,omitempty"`
	Outcome   Outcome   `json:"outcome,omitempty"`
	Inventory []string  `json:"inventory,omitempty"`
	Stored    []string  `json:"stored,omitempty"`
}

func NewGameState(worldName string) *GameState {
	return &GameState{
		ID:    uuid.New(),
		World: worldName,
	}
}

// Finished reports whether the session has ended, by winning or quitting.
func (gs *GameState) Finished() bool {
	return gs.Outcome != OutcomePlaying
}
