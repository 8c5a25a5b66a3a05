package game

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jwebster45206/room-engine/pkg/state"
	"github.com/jwebster45206/room-engine/pkg/world"
)

// scriptPresenter feeds a fixed input script to the engine and records
// everything shown. When the script runs out, PromptLine reports EOF and
// the engine winds down as if the player closed the terminal.
type scriptPresenter struct {
	inputs []string
	out    []string
	images []string
	acks   int
}

func (s *scriptPresenter) DisplayText(lines ...string) {
	s.out = append(s.out, lines...)
}

func (s *scriptPresenter) DisplayImage(ref string) {
	s.images = append(s.images, ref)
}

func (s *scriptPresenter) PromptLine() (string, error) {
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, nil
}

func (s *scriptPresenter) WaitForAcknowledge() error {
	s.acks++
	return nil
}

func (s *scriptPresenter) saw(substr string) bool {
	for _, line := range s.out {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func testWorld(t *testing.T) *world.World {
	t.Helper()
	def := &world.Definition{
		Name:      "Test Manor",
		StartRoom: "hall",
		ExitRoom:  "exit",
		Intro:     []string{"A door slams.", "#", "Silence."},
		OutroWin:  []string{"Morning comes."},
		Rooms: map[string]world.RoomDef{
			"hall": {
				Description: "A bare hall.",
				Hint:        "Glass crunches underfoot.",
				Items:       []string{"Broken key"},
			},
			"kitchen":      {Description: "Rusting cutlery everywhere."},
			"storage_room": {Storage: true},
			"cellar":       {Description: "Empty racks."},
			"exit":         {},
		},
		Doors: []world.DoorDef{
			{From: "hall", Direction: "east", To: "kitchen"},
			{From: "hall", Direction: "north", To: "storage_room"},
			{From: "hall", Direction: "down", To: "cellar"},
			{From: "hall", Direction: "south", To: "exit", Locked: true, KeyRoom: "kitchen"},
			{From: "kitchen", Direction: "west", To: "hall"},
			{From: "storage_room", Direction: "south", To: "hall"},
			{From: "cellar", Direction: "up", To: "hall"},
		},
	}
	w, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return w
}

func runScript(t *testing.T, w *world.World, inputs ...string) (*Engine, *scriptPresenter) {
	t.Helper()
	ui := &scriptPresenter{inputs: inputs}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := New(w, ui, logger)
	if err := eng.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return eng, ui
}

func TestWalkthroughWin(t *testing.T) {
	eng, ui := runScript(t, testWorld(t),
		"GO SOUTH",  // locked, no key yet
		"GO EAST",   // kitchen, where the exit key waits
		"INTERACT",
		"TAKE",
		"GO WEST",
		"GO SOUTH",  // unlock and escape
	)

	gs := eng.State()
	if gs.Outcome != state.OutcomeWon {
		t.Fatalf("outcome = %q, want won", gs.Outcome)
	}
	if gs.Turns != 5 {
		t.Errorf("turns = %d, want 5", gs.Turns)
	}
	if gs.Location != "Exit" {
		t.Errorf("location = %q, want Exit", gs.Location)
	}

	for _, want := range []string{
		"The way to the Exit is locked.",
		"The correct key for this passage is not in your inventory.",
		"Collected Exit key.",
		"The way has been unlocked.",
		"You have entered the Exit.",
		"Morning comes.",
		"Thank you for playing!",
	} {
		if !ui.saw(want) {
			t.Errorf("output missing %q", want)
		}
	}

	// The key was consumed in place on unlock.
	if len(gs.Inventory) != 1 || gs.Inventory[0] != "Exit key (used)" {
		t.Errorf("inventory = %v, want [Exit key (used)]", gs.Inventory)
	}
}

func TestQuit(t *testing.T) {
	eng, ui := runScript(t, testWorld(t), "QUIT")

	gs := eng.State()
	if gs.Outcome != state.OutcomeQuit {
		t.Fatalf("outcome = %q, want quit", gs.Outcome)
	}
	if ui.saw("Morning comes.") {
		t.Error("the win outro should not play on quit")
	}
	if !ui.saw("Thank you for playing!") {
		t.Error("the closing lines play on every outcome")
	}
}

func TestClosedInputQuits(t *testing.T) {
	eng, _ := runScript(t, testWorld(t))
	if eng.State().Outcome != state.OutcomeQuit {
		t.Errorf("outcome = %q, want quit", eng.State().Outcome)
	}
}

func TestIntroPacing(t *testing.T) {
	_, ui := runScript(t, testWorld(t))

	// One acknowledge after the welcome paragraph, one at the intro's "#".
	if ui.acks != 2 {
		t.Errorf("acknowledge count = %d, want 2", ui.acks)
	}
	if !ui.saw("Welcome to Test Manor") {
		t.Error("welcome paragraph missing")
	}
	if ui.saw("#") {
		t.Error("pause markers must never be displayed")
	}
	if len(ui.images) == 0 {
		t.Error("the start room's image should be shown")
	}
}

func TestInvalidActionWord(t *testing.T) {
	eng, ui := runScript(t, testWorld(t), "XYZZY", "QUIT")

	if !ui.saw("[You have not entered a valid action word.") {
		t.Error("invalid input should be reported")
	}
	// Invalid input still costs a turn.
	if eng.State().Turns != 2 {
		t.Errorf("turns = %d, want 2", eng.State().Turns)
	}
}

func TestGoErrors(t *testing.T) {
	_, ui := runScript(t, testWorld(t),
		"GO FLY",   // never declared anywhere
		"GO EAST",  // kitchen
		"GO NORTH", // registered, but the kitchen has no north door
		"QUIT",
	)

	if !ui.saw("[Direction not registered.") {
		t.Error("unregistered direction message missing")
	}
	if !ui.saw("No such doorway exists!") {
		t.Error("missing doorway message missing")
	}
}

func TestMenuOffersInteractOnlyWhereUseful(t *testing.T) {
	_, ui := runScript(t, testWorld(t),
		"MENU",    // hall has an item
		"GO DOWN", // cellar has neither items nor storage
		"MENU",
		"QUIT",
	)

	if !ui.saw("[GO, INTERACT, INSPECT, INVENTORY, HINT, QUIT]") {
		t.Error("menu in the hall should include INTERACT")
	}
	if !ui.saw("[GO, INSPECT, INVENTORY, HINT, QUIT]") {
		t.Error("menu in the cellar should omit INTERACT")
	}
}

func TestInspect(t *testing.T) {
	_, ui := runScript(t, testWorld(t), "INSPECT", "QUIT")

	for _, want := range []string{
		"A bare hall.",
		"A faint glimmer can be spotted across the room...",
		"4 doors line its walls.",
		"[DOWN, EAST, NORTH, SOUTH]",
	} {
		if !ui.saw(want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestHint(t *testing.T) {
	_, ui := runScript(t, testWorld(t),
		"HINT",      // no key yet
		"GO EAST",
		"INTERACT",
		"TAKE",      // Exit key
		"GO WEST",
		"HINT",      // key now carried
		"QUIT",
	)

	if !ui.saw("Glass crunches underfoot.") {
		t.Error("written hint missing")
	}
	if !ui.saw("A useful object weighs on your pocket.") {
		t.Error("carried key hint missing")
	}
}

func TestInventoryEmptyAndHeld(t *testing.T) {
	_, ui := runScript(t, testWorld(t),
		"INVENTORY",
		"INTERACT",
		"TAKE",
		"INVENTORY",
		"QUIT",
	)

	if !ui.saw("Your inventory is empty.") {
		t.Error("empty inventory message missing")
	}
	if !ui.saw("[Broken key]") {
		t.Error("held items listing missing")
	}
}

func TestInteractWithNothing(t *testing.T) {
	eng, ui := runScript(t, testWorld(t), "GO DOWN", "INTERACT", "QUIT")

	if !ui.saw("There is nothing to interact with.") {
		t.Error("empty interaction message missing")
	}
	// The no-op interaction still counted as a turn and consumed no
	// further input.
	if eng.State().Turns != 3 {
		t.Errorf("turns = %d, want 3", eng.State().Turns)
	}
}

func TestInteractPassLeavesLoop(t *testing.T) {
	eng, _ := runScript(t, testWorld(t), "INTERACT", "PASS", "QUIT")

	gs := eng.State()
	if len(gs.Inventory) != 0 {
		t.Errorf("PASS must not collect anything, inventory = %v", gs.Inventory)
	}
	if gs.Turns != 2 {
		t.Errorf("turns = %d, want 2", gs.Turns)
	}
}

func TestInteractRejectsUnknownVerb(t *testing.T) {
	_, ui := runScript(t, testWorld(t), "INTERACT", "DANCE", "PASS", "QUIT")

	if !ui.saw("[Please enter a valid interaction word.]") {
		t.Error("invalid interaction message missing")
	}
}

func TestStorageBoxFlow(t *testing.T) {
	eng, ui := runScript(t, testWorld(t),
		"INTERACT", "TAKE", // Broken key in hand
		"GO NORTH",         // storage room
		"INTERACT",
		"OPEN",
		"STORE", "9", "1", // bad index first, then the Broken key
		"CHECK",
		"RETRIEVE", "1",
		"CLOSE",
		"QUIT",
	)

	for _, want := range []string{
		"This room contains a storage box. [Enter 'OPEN' to access.]",
		"Storage opened.",
		"Item index out of range. [Enter another or 'PASS'.]",
		"Broken key stored.",
		"You have the following items stored:",
		"You retrieved Broken key.",
		"Storage closed.",
	} {
		if !ui.saw(want) {
			t.Errorf("output missing %q", want)
		}
	}

	gs := eng.State()
	if len(gs.Stored) != 0 {
		t.Errorf("storage = %v, want empty after retrieval", gs.Stored)
	}
	if len(gs.Inventory) != 1 || gs.Inventory[0] != "Broken key" {
		t.Errorf("inventory = %v, want [Broken key]", gs.Inventory)
	}
}

func TestStoreWithEmptyHands(t *testing.T) {
	_, ui := runScript(t, testWorld(t),
		"GO NORTH",
		"INTERACT", "OPEN", "STORE", "CLOSE",
		"QUIT",
	)

	if !ui.saw("You carry nothing to store.") {
		t.Error("empty-handed store message missing")
	}
}

func TestRetrieveWithEmptyStorage(t *testing.T) {
	_, ui := runScript(t, testWorld(t),
		"GO NORTH",
		"INTERACT", "OPEN", "RETRIEVE", "CLOSE",
		"QUIT",
	)

	if !ui.saw("You have nothing stored to retrieve.") {
		t.Error("empty storage retrieve message missing")
	}
}

func TestInventoryCap(t *testing.T) {
	def := &world.Definition{
		Name:      "Hoard",
		StartRoom: "vault",
		ExitRoom:  "door",
		Rooms: map[string]world.RoomDef{
			"vault": {Items: []string{"a", "b", "c", "d"}},
			"door":  {},
		},
		Doors: []world.DoorDef{
			{From: "vault", Direction: "out", To: "door"},
		},
	}
	w, err := def.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	eng, ui := runScript(t, w,
		"INTERACT", "TAKE",
		"INTERACT", "TAKE",
		"INTERACT", "TAKE",
		"INTERACT", "TAKE", // fourth item refused
		"QUIT",
	)

	if !ui.saw("Inventory full.") {
		t.Error("inventory cap message missing")
	}
	gs := eng.State()
	if len(gs.Inventory) != 3 {
		t.Errorf("inventory size = %d, want 3", len(gs.Inventory))
	}
}
