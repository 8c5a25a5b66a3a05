package game

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jwebster45206/room-engine/pkg/player"
)

// storageVerbs replace the interaction set once a storage box is opened.
// Opening is one-way within an INTERACT: there is no way back to TAKE or
// PASS until the box is closed and INTERACT is entered again.
var storageVerbs = []string{"CHECK", "RETRIEVE", "STORE", "CLOSE"}

// doInteract runs the interaction sub-loop. The available verbs are
// computed from the current room: TAKE while items remain, OPEN in a
// storage room, PASS always. A room offering only PASS exits immediately.
func (e *Engine) doInteract() {
	var verbs []string
	if e.current.IsStorage() {
		e.ui.DisplayText("This room contains a storage box. [Enter 'OPEN' to access.]", "")
		verbs = append(verbs, "OPEN")
	}
	if e.current.HasItems() {
		verbs = append([]string{"TAKE"}, verbs...)
	}
	verbs = append(verbs, "PASS")

	if len(verbs) == 1 {
		e.ui.DisplayText("There is nothing to interact with.", "")
		return
	}

	for {
		e.ui.DisplayText("[Your available interactions are:]", formatList(verbs), "")
		line, err := e.ui.PromptLine()
		if err != nil {
			return
		}
		verb, _ := parseInput(line)
		if !slices.Contains(verbs, verb) {
			e.ui.DisplayText("[Please enter a valid interaction word.]", "")
			continue
		}

		switch verb {
		case "TAKE":
			item, _ := e.current.FirstItem()
			e.collect(item)
			return
		case "OPEN":
			e.ui.DisplayText("Storage opened.", "")
			verbs = storageVerbs
		case "CHECK":
			e.showStorage()
		case "RETRIEVE":
			e.retrieveLoop()
		case "STORE":
			e.storeLoop()
		case "CLOSE":
			e.ui.DisplayText("Storage closed.", "")
			return
		case "PASS":
			return
		}
	}
}

// collect moves one named item from the room into the inventory, reporting
// the precondition that failed if any did.
func (e *Engine) collect(item string) {
	err := e.player.Collect(item, e.current)
	switch {
	case errors.Is(err, player.ErrItemNotPresent):
		e.ui.DisplayText("Item not in room.", "")
	case errors.Is(err, player.ErrInventoryFull):
		e.ui.DisplayText("Inventory full.", "")
	default:
		e.ui.DisplayText(fmt.Sprintf("Collected %s.", item), "")
		e.logger.Debug("item collected", "item", item, "room", e.current.Name())
	}
}

// storeLoop moves exactly one inventory item into the storage box. The
// preconditions are checked before the loop is entered; inside, the player
// picks a 1-based index or PASS, and bad input re-prompts without limit.
func (e *Engine) storeLoop() {
	carried := e.player.CarriedItems()
	if len(carried) == 0 {
		e.ui.DisplayText("You carry nothing to store.", "")
		return
	}
	if !e.current.IsStorage() {
		e.ui.DisplayText("Room has no storage box.", "")
		return
	}

	e.ui.DisplayText(
		"[Enter the index of the item you wish to store, or 'PASS'.]",
		fmt.Sprintf("[e.g. For %s, enter '1'.]", carried[0]),
		"")

	for {
		e.showInventory()
		line, err := e.ui.PromptLine()
		if err != nil {
			return
		}
		input := strings.ToUpper(strings.TrimSpace(line))
		if input == "PASS" {
			return
		}
		idx, err := strconv.Atoi(input)
		if err != nil {
			e.ui.DisplayText("[Please enter a valid item index, or 'PASS'.]", "")
			continue
		}
		item, err := e.player.Store(idx)
		if err != nil {
			e.ui.DisplayText("Item index out of range. [Enter another or 'PASS'.]", "")
			continue
		}
		e.ui.DisplayText(fmt.Sprintf("%s stored.", item), "")
		e.logger.Debug("item stored", "item", item)
		return
	}
}

// retrieveLoop is the inverse of storeLoop, moving one item from the
// storage box back into the inventory.
func (e *Engine) retrieveLoop() {
	if len(e.player.StoredItems()) == 0 {
		e.ui.DisplayText("You have nothing stored to retrieve.", "")
		return
	}
	if !e.current.IsStorage() {
		e.ui.DisplayText("Room has no storage box.", "")
		return
	}
	if len(e.player.CarriedItems()) >= player.MaxCarried {
		e.ui.DisplayText(
			"Inventory is full. Deposit some items in a nearby storage box.",
			"[Items with no further use are labelled '(used)'.]",
			"")
		return
	}

	e.ui.DisplayText(
		"[Enter the index of the item you wish to retrieve, or 'PASS'.]",
		fmt.Sprintf("[e.g. For %s, enter '1'.]", e.player.StoredItems()[0]),
		"")

	for {
		e.showStorage()
		line, err := e.ui.PromptLine()
		if err != nil {
			return
		}
		input := strings.ToUpper(strings.TrimSpace(line))
		if input == "PASS" {
			return
		}
		idx, err := strconv.Atoi(input)
		if err != nil {
			e.ui.DisplayText("[Please enter a valid item index, or 'PASS'.]", "")
			continue
		}
		item, err := e.player.Retrieve(idx)
		if err != nil {
			e.ui.DisplayText("Item index out of range. [Enter another, or 'PASS'.]", "")
			continue
		}
		e.ui.DisplayText(fmt.Sprintf("You retrieved %s.", item), "")
		e.logger.Debug("item retrieved", "item", item)
		return
	}
}
