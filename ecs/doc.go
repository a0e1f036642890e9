// Package ecs provides ECS adapters for motion.
//
// [NewDonburiSink] bridges scope completion events into a [Donburi] world
// as typed events. Subscribe to [CompletionEventType] in your ECS systems to
// receive them. [LayerComponent] attaches a layer to an entity and
// [SyncPresentation] copies each layer's presentation into its entity.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene := motion.NewScene(motion.Config{Events: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
