package game

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/room-engine/pkg/world"
)

// doGo resolves a GO command. On failure the player stays put and the
// reason is reported; on success (including an unlock, which opens the way
// and moves the player in the same turn) the current room advances.
func (e *Engine) doGo(direction string) {
	exit, err := e.current.CheckExit(direction, e.player)
	switch {
	case errors.Is(err, world.ErrDirectionUnknown):
		e.ui.DisplayText("[Direction not registered. Please check for typos or try another.]", "")
		return
	case errors.Is(err, world.ErrNoDoor):
		e.ui.DisplayText("No such doorway exists! Try inspecting the room.", "")
		return
	case err != nil:
		e.logger.Error("exit check failed", "direction", direction, "error", err)
		return
	}

	if exit.Status == world.ExitLocked {
		e.ui.DisplayText(
			fmt.Sprintf("The way to the %s is locked.", exit.Target.Name()),
			"The correct key for this passage is not in your inventory.",
			"")
		return
	}

	if exit.Status == world.ExitUnlocked {
		e.ui.DisplayText("The way has been unlocked.", "")
	}

	e.current = exit.Target
	e.ui.DisplayText(fmt.Sprintf("You have entered the %s.", e.current.Name()), "")
	e.ui.DisplayImage(e.current.Image())
	e.logger.Debug("player moved", "room", e.current.Name(), "room_id", e.current.ID())
}
