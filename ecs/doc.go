// Package ecs provides ECS adapters for sttt's transition events.
//
// The primary adapter is [NewDonburiSink], which bridges board transitions
// (hover enter/exit, board activation) into a [Donburi] world as typed
// events. Subscribe to [TransitionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	board.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
