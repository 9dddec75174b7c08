// Package ecs provides ECS adapters for bastion's gameplay events.
//
// The primary adapter is [NewDonburiSink], which bridges bastion events
// (block placed or removed, item moved, inventory toggled, core damaged)
// into a [Donburi] world as typed events. Subscribe to [GameEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
