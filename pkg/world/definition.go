package world

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Definition is the serializable form of a world, loaded from a JSON or
// YAML file. Room keys are snake_case ids; doors are an ordered list so
// direction registration and key placement happen in a deterministic order.
type Definition struct {
	Name      string             `json:"name" yaml:"name"`
	StartRoom string             `json:"start_room" yaml:"start_room"`
	ExitRoom  string             `json:"exit_room" yaml:"exit_room"`
	Intro     []string           `json:"intro,omitempty" yaml:"intro,omitempty"`
	OutroWin  []string           `json:"outro_win,omitempty" yaml:"outro_win,omitempty"`
	Rooms     map[string]RoomDef `json:"rooms" yaml:"rooms"`
	Doors     []DoorDef          `json:"doors" yaml:"doors"`
}

// RoomDef describes one room. Name may be omitted, in which case the
// display name is derived from the room's snake_case key.
type RoomDef struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Hint        string   `json:"hint,omitempty" yaml:"hint,omitempty"`
	Storage     bool     `json:"storage,omitempty" yaml:"storage,omitempty"`
	Items       []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// DoorDef describes one directed door. KeyRoom, when set on a locked door,
// names the room where the key item is placed during setup.
type DoorDef struct {
	From      string `json:"from" yaml:"from"`
	Direction string `json:"direction" yaml:"direction"`
	To        string `json:"to" yaml:"to"`
	Locked    bool   `json:"locked,omitempty" yaml:"locked,omitempty"`
	KeyRoom   string `json:"key_room,omitempty" yaml:"key_room,omitempty"`
}

var titleCaser = cases.Title(language.English)

// DisplayName is the room's display name, derived from the map key when the
// definition does not set one (e.g. "dining_room" becomes "Dining Room").
func (rd RoomDef) DisplayName(key string) string {
	if rd.Name != "" {
		return rd.Name
	}
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// Build constructs and freezes a World from the definition. Rooms are
// created in sorted key order so ids are stable across runs.
func (d *Definition) Build() (*World, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("world definition has no name")
	}
	if len(d.Rooms) == 0 {
		return nil, fmt.Errorf("world %q has no rooms", d.Name)
	}

	w := New(d.Name)
	rooms := make(map[string]*Room, len(d.Rooms))

	keys := make([]string, 0, len(d.Rooms))
	for key := range d.Rooms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rd := d.Rooms[key]
		r, err := w.NewRoom(rd.DisplayName(key), RoomConfig{
			Image:       rd.Image,
			Description: rd.Description,
			Hint:        rd.Hint,
			Storage:     rd.Storage,
		})
		if err != nil {
			return nil, err
		}
		if len(rd.Items) > 0 {
			if err := r.AddItems(rd.Items...); err != nil {
				return nil, err
			}
		}
		rooms[key] = r
	}

	for i, dd := range d.Doors {
		from, ok := rooms[dd.From]
		if !ok {
			return nil, fmt.Errorf("door %d: unknown room %q", i, dd.From)
		}
		to, ok := rooms[dd.To]
		if !ok {
			return nil, fmt.Errorf("door %d: unknown room %q", i, dd.To)
		}
		var keyRoom *Room
		if dd.KeyRoom != "" {
			if !dd.Locked {
				return nil, fmt.Errorf("door %d: key_room %q on an unlocked door", i, dd.KeyRoom)
			}
			if keyRoom, ok = rooms[dd.KeyRoom]; !ok {
				return nil, fmt.Errorf("door %d: unknown key room %q", i, dd.KeyRoom)
			}
		}
		if err := from.CreateDoor(dd.Direction, to, dd.Locked, keyRoom); err != nil {
			return nil, fmt.Errorf("door %d: %w", i, err)
		}
	}

	start, ok := rooms[d.StartRoom]
	if !ok {
		return nil, fmt.Errorf("world %q: unknown start room %q", d.Name, d.StartRoom)
	}
	exit, ok := rooms[d.ExitRoom]
	if !ok {
		return nil, fmt.Errorf("world %q: unknown exit room %q", d.Name, d.ExitRoom)
	}
	if err := w.SetStart(start); err != nil {
		return nil, err
	}
	if err := w.SetExit(exit); err != nil {
		return nil, err
	}
	if err := w.SetIntro(d.Intro...); err != nil {
		return nil, err
	}
	if err := w.SetWinOutro(d.OutroWin...); err != nil {
		return nil, err
	}
	if err := w.Freeze(); err != nil {
		return nil, err
	}
	return w, nil
}
