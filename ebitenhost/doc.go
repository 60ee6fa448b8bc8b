// Package ebitenhost is a clicker.Canvas backed by [Ebitengine].
//
// A Canvas draws an axes rectangle with one marker series per class and a
// legend, polls the mouse each frame, and turns presses into the button and
// pick events a clicker.Clicker consumes. Middle-drag pans the view and holds
// the canvas widget lock while it does; the wheel zooms around the cursor.
//
//	canvas := ebitenhost.NewCanvas(ebitenhost.Options{
//		XLim: clicker.Range{Min: 0, Max: 100},
//		YLim: clicker.Range{Min: 0, Max: 100},
//	})
//	klicker, _ := clicker.NewIndexed(canvas, 3, clicker.Config[int]{})
//	_ = ebitenhost.Run(canvas, ebitenhost.RunConfig{Title: "Annotate"})
//
// Input can also be injected for automated runs with [Canvas.InjectClick],
// [Canvas.InjectPick] and JSON test scripts ([LoadTestScript]).
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost
