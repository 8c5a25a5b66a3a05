package world

// Key identifies the key that opens a locked door. Keys are carried around
// as plain item strings; Key is the lock's side of that contract, deriving
// the item string from the target room's name.
type Key struct {
	RoomName string // display name of the room the locked door leads to
	Used     bool
}

// ItemName renders the key as an inventory item string. A used key keeps a
// "(used)" suffix so it no longer matches lock checks but stays visible in
// the player's inventory.
func (k Key) ItemName() string {
	if k.Used {
		return k.RoomName + " key (used)"
	}
	return k.RoomName + " key"
}

// Consumed returns the used form of the key.
func (k Key) Consumed() Key {
	k.Used = true
	return k
}

// Lock blocks a single door direction until its key is presented. Locks are
// one-sided: the connected room's own door back is configured independently.
type Lock struct {
	Target *Room
	Key    Key
}
