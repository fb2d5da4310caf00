// Package ui implements the immediate-mode UI engine drawn atop the game
// layer. It handles both the menus and the HUD.
//
// UI elements are generated immediate-mode: anything that wishes to display
// UI (the superstate, ships showing their names, and so on) must do so every
// frame, without UI state being kept between frames. Display logic takes the
// current application state and an element-building Context and describes a
// tree of elements; update logic takes UI events and may update that state.
//
// The Context flattens the nested display closures into a serial
// high-level instruction stream. A Builder interprets that stream into a
// Pool of elements linked purely by index, the Layouter resolves a
// rectangular bound for every element over multiple passes, and finally
// emits a CommandStream of low-level drawing commands (rect, text,
// clip push/pop) for a rendering backend to paint. The Engine ties the
// pipeline together Elm-style: it regenerates only when state changed and
// otherwise hands back the cached command stream.
package ui
