// Package clicker is an interactive point-annotation widget for 2D canvases.
//
// A [Clicker] overlays a canvas with one marker series per class and a
// legend with one entry per class. Left-clicking inside the axes adds a
// point to the active class; right-clicking removes the nearest point of the
// active class; picking a legend entry makes its class active.
//
// The widget does not draw anything itself. Rendering, legend layout, and
// delivery of raw pointer and pick events belong to a [Canvas]
// implementation. Two are provided: an Ebitengine window in
// clicker/ebitenhost and a terminal screen in clicker/tcellhost.
//
// # Quick start
//
//	canvas := ebitenhost.NewCanvas(ebitenhost.Options{})
//	klicker, err := clicker.New(canvas, []string{"cells", "pdms", "media"},
//		clicker.Config[string]{Markers: []string{"o", "x", "*"}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	klicker.OnPointAdded(func(p clicker.Point, class string) {
//		fmt.Printf("new %s point at %v\n", class, p)
//	})
//	ebitenhost.Run(canvas, ebitenhost.RunConfig{Title: "Annotate"})
//	fmt.Println(klicker.Positions())
//
// # Events
//
// Callbacks are typed per event kind: [Clicker.OnPointAdded],
// [Clicker.OnPointRemoved], [Clicker.OnClassChanged] and
// [Clicker.OnPositionsSet]. Each returns a [CallbackHandle] whose Remove
// method unsubscribes. Callbacks run synchronously, in subscription order,
// on the goroutine that delivered the input. A callback that panics stops
// the callbacks after it.
//
// For ECS integration see the clicker/ecs module, which republishes every
// event into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package clicker
