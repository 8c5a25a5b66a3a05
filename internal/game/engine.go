// Package game runs a world: it reads player commands, resolves them
// against the room graph and inventory, and reports back through the
// Presenter. The whole package is a sequence of synchronous request and
// response turns; every prompt is a blocking suspension point.
package game

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/room-engine/pkg/player"
	"github.com/jwebster45206/room-engine/pkg/state"
	"github.com/jwebster45206/room-engine/pkg/world"
)

// Engine is the top-level game loop and its session state.
type Engine struct {
	world   *world.World
	player  *player.Player
	gs      *state.GameState
	ui      Presenter
	logger  *slog.Logger
	current *world.Room
}

// New prepares a session on a frozen world. The player starts empty-handed
// in the world's start room.
func New(w *world.World, ui Presenter, logger *slog.Logger) *Engine {
	return &Engine{
		world:   w,
		player:  player.New(),
		gs:      state.NewGameState(w.Title()),
		ui:      ui,
		logger:  logger,
		current: w.Start(),
	}
}

// State returns a snapshot of the session.
func (e *Engine) State() state.GameState {
	return e.snapshot()
}

// Run plays the game to completion: intro narrative, the command loop, and
// the outro. It returns when the player wins, quits, or input ends.
func (e *Engine) Run() error {
	e.logger.Info("session started",
		"session_id", e.gs.ID, "world", e.world.Title(), "start", e.current.Name())

	e.playIntro()
	e.ui.DisplayImage(e.current.Image())
	e.notifyState()

	for !e.gs.Finished() {
		line, err := e.ui.PromptLine()
		if err != nil {
			e.logger.Debug("input closed", "error", err)
			e.gs.Outcome = state.OutcomeQuit
			break
		}

		verb, arg := parseInput(line)
		e.dispatch(verb, arg)
		e.gs.Turns++

		// The win check runs after every action, whatever the verb was.
		if e.current == e.world.Exit() {
			e.gs.Outcome = state.OutcomeWon
		}
		e.notifyState()
	}

	e.playOutro()
	e.logger.Info("session finished",
		"session_id", e.gs.ID, "outcome", e.gs.Outcome, "turns", e.gs.Turns)
	return nil
}

func (e *Engine) snapshot() state.GameState {
	gs := *e.gs
	gs.Location = e.current.Name()
	gs.Inventory = e.player.CarriedItems()
	gs.Stored = e.player.StoredItems()
	return gs
}

func (e *Engine) notifyState() {
	if n, ok := e.ui.(StateNotifier); ok {
		n.StateChanged(e.snapshot())
	}
}

// playIntro shows the bordered welcome paragraph, then the world's own
// opening narrative.
func (e *Engine) playIntro() {
	para := []string{
		fmt.Sprintf("Welcome to %s, a word-based adventure game, where your goal", e.world.Title()),
		fmt.Sprintf("is to explore each room, uncover their secrets, reach the %s and escape.", e.world.Exit().Name()),
		"",
		"To navigate the area, enter 'GO' along with the direction you want to travel",
		"in the space below (e.g. 'GO EAST'.)",
		"",
		"If you ever get stuck, enter the action word 'MENU' to see all available",
		"actions, or 'HINT' for some extra help.",
		"",
		"Good luck!",
	}
	border := strings.Repeat("=", maxLineLen(para))

	e.ui.DisplayText(border, "")
	e.ui.DisplayText(para...)
	e.ui.DisplayText("", border, "")
	if err := e.ui.WaitForAcknowledge(); err != nil {
		return
	}

	e.playStory(e.world.Intro())
	e.ui.DisplayText("[Use your available actions to search the area.]", "")
}

func (e *Engine) playOutro() {
	if e.gs.Outcome == state.OutcomeWon {
		e.playStory(e.world.WinOutro())
	}
	e.ui.DisplayText(
		"Thank you for playing!",
		"",
		fmt.Sprintf("If you'd like to play again, why not see if you can escape in under %d turns?", e.gs.Turns),
		"")
}

// playStory displays narrative lines, pausing for the player at each
// literal "#" line.
func (e *Engine) playStory(lines []string) {
	for _, line := range lines {
		if line == "#" {
			if err := e.ui.WaitForAcknowledge(); err != nil {
				return
			}
			continue
		}
		e.ui.DisplayText(line)
	}
	if len(lines) > 0 {
		e.ui.DisplayText("")
	}
}

func maxLineLen(lines []string) int {
	max := 0
	for _, line := range lines {
		if len(line) > max {
			max = len(line)
		}
	}
	return max
}

// formatList renders a list of items or directions the way the player sees
// them everywhere: bracketed and comma-separated.
func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
