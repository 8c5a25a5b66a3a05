// Package player tracks what the player carries and what they have set
// aside in storage boxes around the world.
package player

import (
	"errors"

	"github.com/jwebster45206/room-engine/pkg/world"
)

// MaxCarried is the inventory capacity. It holds after every operation.
const MaxCarried = 3

var (
	ErrItemNotPresent  = errors.New("item not in room")
	ErrInventoryFull   = errors.New("inventory full")
	ErrIndexOutOfRange = errors.New("item index out of range")
)

// Player holds the two item collections of a session: the inventory carried
// from room to room, and the storage box. Storage is pooled: every storage
// room opens onto the same box.
type Player struct {
	inventory  []string
	storageBox []string
}

func New() *Player {
	return &Player{}
}

// CarriedItems returns a copy of the inventory, in collection order.
func (p *Player) CarriedItems() []string {
	return append([]string(nil), p.inventory...)
}

// StoredItems returns a copy of the storage box contents, in order.
func (p *Player) StoredItems() []string {
	return append([]string(nil), p.storageBox...)
}

// Collect moves an item from the room into the inventory. The item must be
// present in the room and the inventory must have space. Collection is a
// move, never a copy: the room loses the item the moment the player gains
// it.
func (p *Player) Collect(item string, r *world.Room) error {
	if !r.HasItem(item) {
		return ErrItemNotPresent
	}
	if len(p.inventory) >= MaxCarried {
		return ErrInventoryFull
	}
	r.RemoveItem(item)
	p.inventory = append(p.inventory, item)
	return nil
}

// Store moves the item at 1-based index i from inventory to storage and
// returns it.
func (p *Player) Store(i int) (string, error) {
	if i < 1 || i > len(p.inventory) {
		return "", ErrIndexOutOfRange
	}
	item := p.inventory[i-1]
	p.inventory = append(p.inventory[:i-1], p.inventory[i:]...)
	p.storageBox = append(p.storageBox, item)
	return item, nil
}

// Retrieve moves the item at 1-based index i from storage to inventory and
// returns it.
func (p *Player) Retrieve(i int) (string, error) {
	if len(p.inventory) >= MaxCarried {
		return "", ErrInventoryFull
	}
	if i < 1 || i > len(p.storageBox) {
		return "", ErrIndexOutOfRange
	}
	item := p.storageBox[i-1]
	p.storageBox = append(p.storageBox[:i-1], p.storageBox[i:]...)
	p.inventory = append(p.inventory, item)
	return item, nil
}

// ReplaceCarried swaps one carried item for another in place, preserving
// inventory size. Used when a key is consumed unlocking a door.
func (p *Player) ReplaceCarried(oldItem, newItem string) bool {
	for i, it := range p.inventory {
		if it == oldItem {
			p.inventory[i] = newItem
			return true
		}
	}
	return false
}
