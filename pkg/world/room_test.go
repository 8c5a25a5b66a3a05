package world

import (
	"errors"
	"reflect"
	"testing"
)

// fakeCarrier is a minimal Carrier for exercising CheckExit and Hint
// without pulling in the player package.
type fakeCarrier struct {
	carried []string
	stored  []string
}

func (c *fakeCarrier) CarriedItems() []string { return c.carried }
func (c *fakeCarrier) StoredItems() []string  { return c.stored }

func (c *fakeCarrier) ReplaceCarried(oldItem, newItem string) bool {
	for i, it := range c.carried {
		if it == oldItem {
			c.carried[i] = newItem
			return true
		}
	}
	return false
}

func TestCheckExitUnregisteredVsNoDoor(t *testing.T) {
	_, hall, garden := buildTestWorld(t)
	if err := hall.CreateDoor("north", garden, false, nil); err != nil {
		t.Fatal(err)
	}

	c := &fakeCarrier{}

	// "sideways" was never declared by any room.
	if _, err := hall.CheckExit("sideways", c); !errors.Is(err, ErrDirectionUnknown) {
		t.Errorf("unregistered direction: got %v, want ErrDirectionUnknown", err)
	}

	// "north" is registered, but the garden has no door in that direction.
	if _, err := garden.CheckExit("north", c); !errors.Is(err, ErrNoDoor) {
		t.Errorf("registered direction, no door: got %v, want ErrNoDoor", err)
	}
}

func TestCheckExitOpenDoor(t *testing.T) {
	_, hall, garden := buildTestWorld(t)
	if err := hall.CreateDoor("North", garden, false, nil); err != nil {
		t.Fatal(err)
	}

	exit, err := hall.CheckExit("north", &fakeCarrier{})
	if err != nil {
		t.Fatalf("CheckExit failed: %v", err)
	}
	if exit.Status != ExitOpen {
		t.Errorf("status = %v, want ExitOpen", exit.Status)
	}
	if exit.Target != garden {
		t.Errorf("target = %v, want garden", exit.Target.Name())
	}
}

func TestCheckExitLockedWithoutKey(t *testing.T) {
	_, hall, garden := buildTestWorld(t)
	if err := hall.CreateDoor("south", garden, true, nil); err != nil {
		t.Fatal(err)
	}

	c := &fakeCarrier{carried: []string{"some other item"}}
	exit, err := hall.CheckExit("south", c)
	if err != nil {
		t.Fatalf("CheckExit failed: %v", err)
	}
	if exit.Status != ExitLocked {
		t.Errorf("status = %v, want ExitLocked", exit.Status)
	}
	if exit.Target != garden {
		t.Error("a locked exit still names its target room")
	}

	// No state changed: a second check is identical.
	exit, err = hall.CheckExit("south", c)
	if err != nil || exit.Status != ExitLocked {
		t.Errorf("second check: status = %v, err = %v", exit.Status, err)
	}
}

func TestCheckExitUnlockConsumesKeyOneSided(t *testing.T) {
	w, hall, garden := buildTestWorld(t)
	cellar, err := w.NewRoom("Cellar", RoomConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if err := hall.CreateDoor("down", cellar, true, nil); err != nil {
		t.Fatal(err)
	}
	if err := cellar.CreateDoor("up", hall, true, nil); err != nil {
		t.Fatal(err)
	}
	_ = garden

	c := &fakeCarrier{carried: []string{"Cellar key"}}
	exit, err := hall.CheckExit("down", c)
	if err != nil {
		t.Fatalf("CheckExit failed: %v", err)
	}
	if exit.Status != ExitUnlocked {
		t.Fatalf("status = %v, want ExitUnlocked", exit.Status)
	}
	if exit.Target != cellar {
		t.Error("unlock should resolve to the locked door's target")
	}

	// The key is rewritten in place, never dropped.
	want := []string{"Cellar key (used)"}
	if !reflect.DeepEqual(c.carried, want) {
		t.Errorf("inventory after unlock = %v, want %v", c.carried, want)
	}

	// Only the checked side is unlocked; the reverse door keeps its lock.
	reverse, err := cellar.CheckExit("up", c)
	if err != nil {
		t.Fatalf("reverse CheckExit failed: %v", err)
	}
	if reverse.Status != ExitLocked {
		t.Errorf("reverse door status = %v, want ExitLocked", reverse.Status)
	}

	// Re-checking the unlocked side is now a plain open door.
	again, err := hall.CheckExit("down", c)
	if err != nil {
		t.Fatalf("re-check failed: %v", err)
	}
	if again.Status != ExitOpen {
		t.Errorf("re-check status = %v, want ExitOpen", again.Status)
	}
}

func TestCreateDoorPlacesKeyInKeyRoom(t *testing.T) {
	w, hall, garden := buildTestWorld(t)
	kitchen, err := w.NewRoom("Kitchen", RoomConfig{})
	if err != nil {
		t.Fatal(err)
	}

	if err := hall.CreateDoor("south", garden, true, kitchen); err != nil {
		t.Fatal(err)
	}

	if !kitchen.HasItem("Garden key") {
		t.Errorf("kitchen items = %v, want to contain %q", kitchen.Items(), "Garden key")
	}
}

func TestRoomItems(t *testing.T) {
	_, hall, _ := buildTestWorld(t)
	if err := hall.AddItems("coin", "rope", "coin"); err != nil {
		t.Fatal(err)
	}

	if !hall.HasItems() || !hall.HasItem("rope") {
		t.Fatal("items not recorded")
	}
	first, ok := hall.FirstItem()
	if !ok || first != "coin" {
		t.Errorf("FirstItem = %q, %v", first, ok)
	}

	if !hall.RemoveItem("coin") {
		t.Fatal("RemoveItem failed")
	}
	// Duplicates are distinct instances: one coin remains.
	if !hall.HasItem("coin") {
		t.Error("second coin should remain after removing one")
	}
	if hall.RemoveItem("lantern") {
		t.Error("removing an absent item should report false")
	}
}

func TestDirectionsSorted(t *testing.T) {
	w, hall, garden := buildTestWorld(t)
	other, err := w.NewRoom("Other", RoomConfig{})
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{"west", "east", "north"} {
		if err := hall.CreateDoor(d, garden, false, nil); err != nil {
			t.Fatal(err)
		}
	}
	_ = other

	want := []string{"EAST", "NORTH", "WEST"}
	if got := hall.Directions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Directions() = %v, want %v", got, want)
	}
}

func TestHint(t *testing.T) {
	w, hall, garden := buildTestWorld(t)
	cellar, err := w.NewRoom("Cellar", RoomConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if err := hall.CreateDoor("south", garden, true, nil); err != nil {
		t.Fatal(err)
	}
	if err := hall.CreateDoor("down", cellar, true, nil); err != nil {
		t.Fatal(err)
	}
	if err := hall.AddItems("coin"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		carried    []string
		stored     []string
		keyCarried bool
		keyStored  bool
	}{
		{name: "no keys anywhere"},
		{name: "key carried", carried: []string{"Garden key"}, keyCarried: true},
		{name: "other lock's key carried", carried: []string{"Cellar key"}, keyCarried: true},
		{name: "key stored", stored: []string{"Cellar key"}, keyStored: true},
		{name: "used key does not match", carried: []string{"Garden key (used)"}},
		{
			name:       "keys in both places",
			carried:    []string{"Garden key"},
			stored:     []string{"Cellar key"},
			keyCarried: true,
			keyStored:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hall.Hint(&fakeCarrier{carried: tt.carried, stored: tt.stored})
			if !h.ItemsRemain {
				t.Error("ItemsRemain should be true while the coin is uncollected")
			}
			if h.KeyCarried != tt.keyCarried {
				t.Errorf("KeyCarried = %v, want %v", h.KeyCarried, tt.keyCarried)
			}
			if h.KeyStored != tt.keyStored {
				t.Errorf("KeyStored = %v, want %v", h.KeyStored, tt.keyStored)
			}
		})
	}
}

func TestKeyItemNames(t *testing.T) {
	k := Key{RoomName: "Dungeon Cell"}
	if got := k.ItemName(); got != "Dungeon Cell key" {
		t.Errorf("ItemName() = %q", got)
	}
	if got := k.Consumed().ItemName(); got != "Dungeon Cell key (used)" {
		t.Errorf("Consumed().ItemName() = %q", got)
	}
	if k.Used {
		t.Error("Consumed must not mutate the receiver")
	}
}
