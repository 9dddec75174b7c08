package ecs

import (
	"github.com/phanxgames/bastion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameEventType is the Donburi event type for bastion gameplay events.
var GameEventType = events.NewEventType[bastion.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on GameEventType and delivered by events.ProcessEvents.
func NewDonburiSink(world donburi.World) bastion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event bastion.Event) {
	GameEventType.Publish(s.world, event)
}
