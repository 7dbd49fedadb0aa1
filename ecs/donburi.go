package ecs

import (
	"github.com/phanxgames/sttt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for sttt transitions.
var TransitionEventType = events.NewEventType[sttt.Transition]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Transitions are published to TransitionEventType in emission order and
// can be consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sttt.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTransition(t sttt.Transition) {
	TransitionEventType.Publish(s.world, t)
}
