package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// CompletionEventType is the Donburi event type for scope completions.
var CompletionEventType = events.NewEventType[motion.CompletionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Completion events are published to CompletionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCompletion(event motion.CompletionEvent) {
	CompletionEventType.Publish(s.world, event)
}

// LayerRef links an entity to a layer.
type LayerRef struct {
	Layer *motion.Layer
}

// LayerComponent holds the layer an entity is drawn with.
var LayerComponent = donburi.NewComponentType[LayerRef]()

// PresentationComponent receives the layer's presentation on each
// SyncPresentation.
var PresentationComponent = donburi.NewComponentType[motion.LayerState]()

// NewLayerEntity creates an entity for l with both components.
func NewLayerEntity(world donburi.World, l *motion.Layer) donburi.Entity {
	e := world.Create(LayerComponent, PresentationComponent)
	entry := world.Entry(e)
	LayerComponent.SetValue(entry, LayerRef{Layer: l})
	PresentationComponent.SetValue(entry, l.Presentation())
	return e
}

var layerQuery = donburi.NewQuery(filter.Contains(LayerComponent, PresentationComponent))

// SyncPresentation copies every live layer's presentation into its entity
// and removes entities whose layer has been disposed.
func SyncPresentation(world donburi.World) {
	var gone []donburi.Entity
	layerQuery.Each(world, func(entry *donburi.Entry) {
		ref := LayerComponent.Get(entry)
		if ref.Layer == nil || ref.Layer.IsDisposed() {
			gone = append(gone, entry.Entity())
			return
		}
		PresentationComponent.SetValue(entry, ref.Layer.Presentation())
	})
	for _, e := range gone {
		world.Remove(e)
	}
}
