// Package calm is a small framework for relaxing, pointer-driven animated
// scenes on [Ebitengine].
//
// Every scene follows the same pattern: a [Scene] is mounted onto a [Host]
// with [Mount], which sizes the surface for the device pixel ratio, wires
// pointer and resize listeners and starts a frame loop that hands the scene a
// clamped time step (see [MaxDelta]). Mount returns a dispose function that
// stops the loop and removes every listener; calling it twice is harmless.
//
// Scenes keep short-lived entities in a [Pool], age them with [Lifetime]
// and draw them through a [Canvas], which works in logical pixels and
// offers the handful of primitives the scenes need: circles, arcs,
// polylines, polygons, radial and linear gradients and debug text.
//
// # Quick start
//
//	host := calm.NewHost()
//	router := calm.NewRouter(host, routes)
//	router.Navigate("calm-touch")
//	if err := calm.Run(host, calm.RunConfig{Title: "calm", Width: 960, Height: 640}); err != nil {
//		log.Fatal(err)
//	}
//
// # Headless driving
//
// [Host.SetViewport], the Inject* methods and [Host.Step] drive a host
// without a window. Tests and the JSON [ScriptRunner] use them to feed
// pointer events frame by frame.
//
// [Ebitengine]: https://ebitengine.org
package calm
