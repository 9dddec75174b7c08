package bastion

// Item is one inventory entry.
type Item struct {
	Name   string
	Visual Visual
	// OnUse runs when the item is used from the inventory. May be nil.
	OnUse func()
}

// Slot is the content of one inventory cell: either empty or holding an
// item. The zero Slot is empty.
type Slot struct {
	item Item
	full bool
}

// EmptySlot returns an unoccupied slot.
func EmptySlot() Slot { return Slot{} }

// Occupied returns a slot holding it.
func Occupied(it Item) Slot { return Slot{item: it, full: true} }

// Empty reports whether the slot holds nothing.
func (s Slot) Empty() bool { return !s.full }

// Item returns the held item and true, or the zero Item and false.
func (s Slot) Item() (Item, bool) {
	return s.item, s.full
}
