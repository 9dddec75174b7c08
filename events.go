package bastion

// EventType identifies a gameplay event.
type EventType uint8

const (
	// EventBlockPlaced fires when a placeable claims a terrain cell.
	EventBlockPlaced EventType = iota
	// EventBlockRemoved fires when a placeable releases its cell.
	EventBlockRemoved
	// EventItemMoved fires when a drag ends on a cell.
	EventItemMoved
	// EventInventoryToggled fires when the toggle key opens or closes the
	// inventory. Value is 1 when shown.
	EventInventoryToggled
	// EventCoreDamaged fires on every effective hit. Value is the HP left.
	EventCoreDamaged
)

var eventTypeNames = [...]string{
	EventBlockPlaced:      "block_placed",
	EventBlockRemoved:     "block_removed",
	EventItemMoved:        "item_moved",
	EventInventoryToggled: "inventory_toggled",
	EventCoreDamaged:      "core_damaged",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is a gameplay notification delivered to the scene's EventSink.
type Event struct {
	Type     EventType
	ObjectID uint32
	Name     string
	Cell     Cell
	From     Cell
	Value    int
}

// EventSink receives gameplay events synchronously, from inside the frame
// phase that produced them. Sinks must not mutate the scene.
type EventSink interface {
	EmitEvent(Event)
}

// SetEventSink installs sink. Nil disables events.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Scene) emit(e Event) {
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}
