// Package motion composes declarative animations for layer trees.
//
// Callers open nested timing scopes and write property values inside them.
// Each write becomes an animation from the value on screen to the new value:
// spatial properties animate additively, so a new animation interrupting one
// in flight never snaps. Scopes report completion once every animation
// declared in them, nested scopes included, has finished, or as soon as one
// of them is interrupted.
//
// # Quick start
//
//	scene := motion.NewScene(motion.Config{})
//	box := motion.NewLayer("box")
//	scene.Root().AddSublayer(box)
//
//	scene.Animate(motion.Scope{
//		Duration: motion.Abs(0.3),
//		Function: motion.EaseOut,
//		Completion: func(state motion.CompletionState) {
//			log.Println("move", state)
//		},
//	}, func() {
//		box.SetPosition(10, 0)
//	})
//
//	// once per frame
//	scene.Advance(dt)
//
// Package render draws a scene with [Ebitengine] and runs the game loop:
//
//	render.Run(scene, render.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Scopes and contexts
//
// [Animator.Animate] resolves a [Scope] into a [Context]: an absolute start
// time, a duration, a timing [Function] and a list of [Trait] values. Unset
// fields inherit from the enclosing context; traits never do. Times are
// given as [TimeUnit] values, either absolute seconds ([Abs]) or fractions
// of the enclosing context ([Rel]):
//
//	scene.Animate(motion.Scope{Duration: motion.Abs(1)}, func() {
//		scene.Animate(motion.Scope{Start: motion.Rel(0.5), Duration: motion.Rel(0.5)}, func() {
//			box.SetOpacity(0) // fades during the second half
//		})
//	})
//
// The returned Context can be re-entered later with [Context.Animate] to add
// more animations sharing its timing.
//
// # Traits
//
// [Repeating], [RepeatingForever], [Autoreversing], [Filled],
// [ReplacingSameKey], [FromModelValue] and [IgnoringContext] modify every
// animation of the scope they are given to. When a category appears twice,
// the first occurrence wins.
//
// # Explicit animations
//
// [Animator.AddAnimation] animates a key path between two [Endpoint] values
// without changing the model. [Animator.Proxy] builds validated key paths:
//
//	a.Proxy(box).Key("bounds").Sub("size").Set(motion.PresentationValue, motion.Val(size))
//
// # Targets
//
// Anything implementing [Target] can be animated. [Layer] is the reference
// implementation: its setters report writes to the scene's [WriteHook], and
// its presentation values are evaluated from the registered [Group] values.
//
// # Configuration and diagnostics
//
// [Config] sets the default transition duration, the clock, a [zap] logger,
// optional Prometheus [Metrics] and an [EventSink] for completion events
// (see the ecs module for a Donburi adapter). Misuse such as relative times
// with no enclosing scope is reported as a warning, never as an error.
// Presets and scenario scripts can be loaded from YAML with [LoadPresets]
// and [LoadScript].
//
// [Ebitengine]: https://ebitengine.org
// [zap]: https://pkg.go.dev/go.uber.org/zap
package motion
