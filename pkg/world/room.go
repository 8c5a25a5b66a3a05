package world

import (
	"fmt"
	"sort"
)

// Room is a node in the world graph. Doors are directed edges keyed by an
// upper-cased direction label; a reverse door must be declared on the other
// room if two-way travel is wanted.
type Room struct {
	w           *World
	id          int
	name        string
	image       string
	description string
	hint        string
	storage     bool
	items       []string
	doors       map[string]*Room
	locks       map[string]*Lock
}

func (r *Room) ID() int          { return r.id }
func (r *Room) Name() string     { return r.name }
func (r *Room) Image() string    { return r.image }
func (r *Room) IsStorage() bool  { return r.storage }
func (r *Room) HasItems() bool   { return len(r.items) > 0 }

// Items returns a copy of the room's uncollected items, in order.
func (r *Room) Items() []string {
	return append([]string(nil), r.items...)
}

// AddItems appends items to the room. Duplicate names are allowed and are
// treated as distinct instances by position.
func (r *Room) AddItems(items ...string) error {
	if r.w.frozen {
		return fmt.Errorf("add items to %q: %w", r.name, ErrFrozen)
	}
	r.items = append(r.items, items...)
	return nil
}

// HasItem reports whether an item with this exact name is in the room.
func (r *Room) HasItem(name string) bool {
	for _, it := range r.items {
		if it == name {
			return true
		}
	}
	return false
}

// FirstItem returns the room's first uncollected item.
func (r *Room) FirstItem() (string, bool) {
	if len(r.items) == 0 {
		return "", false
	}
	return r.items[0], true
}

// RemoveItem removes the first occurrence of name from the room. When a
// room holds several items with the same name, which physical instance is
// removed is unspecified; any of them may go.
func (r *Room) RemoveItem(name string) bool {
	for i, it := range r.items {
		if it == name {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// CreateDoor adds a directed door from this room. The direction label is
// registered world-wide the first time any room declares it. A locked door
// derives its key from the target room's name; when keyRoom is non-nil the
// key item is placed there for the player to find.
func (r *Room) CreateDoor(direction string, to *Room, locked bool, keyRoom *Room) error {
	if r.w.frozen {
		return fmt.Errorf("create door from %q: %w", r.name, ErrFrozen)
	}
	if to == nil {
		return fmt.Errorf("create door from %q: no target room", r.name)
	}
	dir := normalizeDirection(direction)
	if dir == "" {
		return fmt.Errorf("create door from %q: empty direction", r.name)
	}
	r.w.registerDirection(dir)
	r.doors[dir] = to

	if locked {
		lock := &Lock{Target: to, Key: Key{RoomName: to.name}}
		r.locks[dir] = lock
		if keyRoom != nil {
			keyRoom.items = append(keyRoom.items, lock.Key.ItemName())
		}
	}
	return nil
}

// Directions lists the room's door directions, sorted for stable output.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.doors))
	for dir := range r.doors {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// Carrier is the view of the player the room graph needs: what is carried,
// what is stored, and the ability to swap a carried item during unlock.
type Carrier interface {
	CarriedItems() []string
	StoredItems() []string
	ReplaceCarried(oldItem, newItem string) bool
}

// ExitStatus classifies the outcome of CheckExit for an existing door.
type ExitStatus int

const (
	ExitLocked   ExitStatus = iota // door exists, key not carried
	ExitOpen                       // door exists and is not locked
	ExitUnlocked                   // door was locked, key consumed this call
)

// Exit is the result of a successful exit check.
type Exit struct {
	Status ExitStatus
	Target *Room
}

// CheckExit resolves a movement request through this room.
//
// An unregistered direction fails with ErrDirectionUnknown, a registered
// direction with no door here fails with ErrNoDoor; neither changes state.
// A locked door with the required key in the carrier's inventory removes
// the lock from this side only and swaps the key for its used form; without
// the key the result is ExitLocked with no state change. Checking an
// already-open door is side-effect-free.
func (r *Room) CheckExit(direction string, c Carrier) (Exit, error) {
	dir := normalizeDirection(direction)
	if !r.w.KnownDirection(dir) {
		return Exit{}, fmt.Errorf("%w: %q", ErrDirectionUnknown, direction)
	}
	if lock, ok := r.locks[dir]; ok {
		if c.ReplaceCarried(lock.Key.ItemName(), lock.Key.Consumed().ItemName()) {
			delete(r.locks, dir)
			return Exit{Status: ExitUnlocked, Target: r.doors[dir]}, nil
		}
		return Exit{Status: ExitLocked, Target: lock.Target}, nil
	}
	if to, ok := r.doors[dir]; ok {
		return Exit{Status: ExitOpen, Target: to}, nil
	}
	return Exit{}, fmt.Errorf("%w: %q", ErrNoDoor, dir)
}

// Info is the read-only room summary shown on INSPECT.
type Info struct {
	Name        string
	Description string
	HasItems    bool
	Directions  []string
}

func (r *Room) Info() Info {
	return Info{
		Name:        r.name,
		Description: r.description,
		HasItems:    len(r.items) > 0,
		Directions:  r.Directions(),
	}
}

// HintInfo is the result of a HINT query. KeyCarried and KeyStored are set
// when any of this room's lock keys appears in the carrier's inventory or
// storage; the check is set membership, not a walkthrough, so it does not
// say which key matches which door.
type HintInfo struct {
	Written     string
	ItemsRemain bool
	KeyCarried  bool
	KeyStored   bool
}

func (r *Room) Hint(c Carrier) HintInfo {
	h := HintInfo{
		Written:     r.hint,
		ItemsRemain: len(r.items) > 0,
	}
	if len(r.locks) == 0 {
		return h
	}
	wanted := make(map[string]bool, len(r.locks))
	for _, lock := range r.locks {
		wanted[lock.Key.ItemName()] = true
	}
	for _, it := range c.CarriedItems() {
		if wanted[it] {
			h.KeyCarried = true
			break
		}
	}
	for _, it := range c.StoredItems() {
		if wanted[it] {
			h.KeyStored = true
			break
		}
	}
	return h
}
