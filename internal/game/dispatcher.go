package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jwebster45206/room-engine/pkg/state"
)

// baseActions are the action words valid in every room. INTERACT joins the
// menu only when the current room has something to interact with.
var baseActions = []string{"GO", "INSPECT", "INVENTORY", "HINT", "QUIT"}

// parseInput splits a raw line into an action word and an optional single
// argument, both upper-cased. Everything past the second token is ignored.
func parseInput(line string) (verb, arg string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ""
	}
	verb = strings.ToUpper(fields[0])
	if len(fields) > 1 {
		arg = strings.ToUpper(fields[1])
	}
	return verb, arg
}

// dispatch routes one parsed command. Invalid input never ends the session;
// it reports and leaves all state untouched.
func (e *Engine) dispatch(verb, arg string) {
	e.logger.Debug("action", "verb", verb, "arg", arg, "room", e.current.Name())

	switch verb {
	case "GO":
		e.doGo(arg)
	case "INTERACT":
		e.doInteract()
	case "INSPECT":
		e.showInfo()
	case "INVENTORY":
		e.showInventory()
	case "HINT":
		e.showHint()
	case "MENU":
		e.showMenu()
	case "QUIT":
		e.gs.Outcome = state.OutcomeQuit
	default:
		e.ui.DisplayText("[You have not entered a valid action word. Enter 'MENU' to see all available actions.]", "")
	}
}

// canInteract reports whether INTERACT would currently do anything.
func (e *Engine) canInteract() bool {
	return e.current.HasItems() || e.current.IsStorage()
}

func (e *Engine) showMenu() {
	actions := baseActions
	if e.canInteract() {
		actions = slices.Insert(slices.Clone(actions), 1, "INTERACT")
	}
	e.ui.DisplayText("[You may enter the following action words:]", formatList(actions), "")
}

func (e *Engine) showInfo() {
	info := e.current.Info()
	if info.Description != "" {
		e.ui.DisplayText(info.Description, "")
	}
	if info.HasItems {
		e.ui.DisplayText("A faint glimmer can be spotted across the room...", "")
	}
	if len(info.Directions) == 1 {
		e.ui.DisplayText("Just 1 door is found upon its walls.", "")
	} else {
		e.ui.DisplayText(fmt.Sprintf("%d doors line its walls.", len(info.Directions)), "")
	}
	e.ui.DisplayText("[Your available directions are:]", formatList(info.Directions), "")
}

func (e *Engine) showHint() {
	h := e.current.Hint(e.player)
	if h.Written != "" {
		e.ui.DisplayText(h.Written, "")
	}
	if h.ItemsRemain {
		e.ui.DisplayText("You have not obtained every item in this room. [Enter 'INTERACT'.]", "")
	} else {
		e.ui.DisplayText("No more items remain in this room.", "")
	}
	if h.KeyCarried {
		e.ui.DisplayText(
			"A useful object weighs on your pocket.",
			"Perhaps it's of use here? [Check your inventory.]",
			"")
	}
	if h.KeyStored {
		e.ui.DisplayText(
			"You recall having found a suitable key before.",
			"[Find and check a storage box.]",
			"")
	}
}

func (e *Engine) showInventory() {
	items := e.player.CarriedItems()
	if len(items) == 0 {
		e.ui.DisplayText("Your inventory is empty.", "")
		return
	}
	e.ui.DisplayText("You are holding the following items:", formatList(items), "")
}

func (e *Engine) showStorage() {
	items := e.player.StoredItems()
	if len(items) == 0 {
		e.ui.DisplayText("Your storage is empty.", "")
		return
	}
	e.ui.DisplayText("You have the following items stored:", formatList(items), "")
}
