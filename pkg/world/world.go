// Package world models the room graph of a text adventure: rooms joined by
// directed doors, locks opened by keys found in other rooms, and the queries
// the game engine uses to move a player through it.
package world

import (
	"fmt"
	"strings"
)

// World owns every room of a game and the session-wide registries: the
// direction set, the room id counter and the start/exit rooms. A world is
// built once during setup, then frozen; all mutating builder methods fail
// after Freeze.
type World struct {
	title      string
	rooms      []*Room
	directions map[string]bool // registered direction labels, upper-cased
	start      *Room
	exit       *Room
	intro      []string
	outroWin   []string
	frozen     bool
}

// New returns an empty, unfrozen world.
func New(title string) *World {
	return &World{
		title:      title,
		directions: make(map[string]bool),
	}
}

// RoomConfig carries the optional attributes of a new room.
type RoomConfig struct {
	Image       string // presenter reference for the room's illustration
	Description string // long-form description shown on INSPECT
	Hint        string // written hint shown on HINT
	Storage     bool   // whether the room holds a storage box
}

// NewRoom creates a room in this world. Room ids are assigned from a
// monotonic counter and are stable for the session.
func (w *World) NewRoom(name string, cfg RoomConfig) (*Room, error) {
	if w.frozen {
		return nil, fmt.Errorf("create room %q: %w", name, ErrFrozen)
	}
	r := &Room{
		w:           w,
		id:          len(w.rooms) + 1,
		name:        name,
		image:       cfg.Image,
		description: cfg.Description,
		hint:        cfg.Hint,
		storage:     cfg.Storage,
		doors:       make(map[string]*Room),
		locks:       make(map[string]*Lock),
	}
	w.rooms = append(w.rooms, r)
	return r, nil
}

// SetStart designates the room the player begins in.
func (w *World) SetStart(r *Room) error {
	if w.frozen {
		return fmt.Errorf("set start room: %w", ErrFrozen)
	}
	w.start = r
	return nil
}

// SetExit designates the room that wins the game when entered.
func (w *World) SetExit(r *Room) error {
	if w.frozen {
		return fmt.Errorf("set exit room: %w", ErrFrozen)
	}
	w.exit = r
	return nil
}

// SetIntro sets the opening narrative. A literal "#" line marks a pause
// where the presenter waits for the player to acknowledge.
func (w *World) SetIntro(lines ...string) error {
	if w.frozen {
		return fmt.Errorf("set intro: %w", ErrFrozen)
	}
	w.intro = append([]string(nil), lines...)
	return nil
}

// SetWinOutro sets the narrative shown when the player escapes. Same "#"
// pacing rules as SetIntro.
func (w *World) SetWinOutro(lines ...string) error {
	if w.frozen {
		return fmt.Errorf("set outro: %w", ErrFrozen)
	}
	w.outroWin = append([]string(nil), lines...)
	return nil
}

// Freeze ends world setup. The graph is read-only afterwards, except for
// items leaving rooms as the player collects them.
func (w *World) Freeze() error {
	if w.start == nil {
		return fmt.Errorf("freeze world %q: no start room", w.title)
	}
	if w.exit == nil {
		return fmt.Errorf("freeze world %q: no exit room", w.title)
	}
	w.frozen = true
	return nil
}

func (w *World) Title() string      { return w.title }
func (w *World) Start() *Room       { return w.start }
func (w *World) Exit() *Room        { return w.exit }
func (w *World) Frozen() bool       { return w.frozen }
func (w *World) Rooms() []*Room     { return append([]*Room(nil), w.rooms...) }
func (w *World) Intro() []string    { return append([]string(nil), w.intro...) }
func (w *World) WinOutro() []string { return append([]string(nil), w.outroWin...) }

// KnownDirection reports whether any room in this world has ever declared
// the direction. The check is case-insensitive.
func (w *World) KnownDirection(direction string) bool {
	return w.directions[normalizeDirection(direction)]
}

func (w *World) registerDirection(direction string) {
	w.directions[direction] = true
}

func normalizeDirection(direction string) string {
	return strings.ToUpper(strings.TrimSpace(direction))
}
