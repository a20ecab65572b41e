// Package screen renders structured widgets onto small round displays.
//
// The package is built around a circular viewport inscribed in the backend's
// pixel rectangle. Widgets place themselves with symbolic cardinal positions
// (N, NE, E, ... CENTER) and the layout resolver converts those into absolute
// coordinates that keep text inside the visible circle.
//
// 3-level API:
//
//	Level 1 — Widgets:  Title, Value, Subtitle, Bar, Gauge, Graph, Menu,
//	                    Compass, Watch, Face.
//	Level 2 — Cardinal: Text("hello", North, ...), Line, Circle, Rect.
//	Level 3 — Pixels:   Pixel(x, y, c) with Center and Radius helpers.
//
// Rendering is immediate: every call fully rasterizes into the backend before
// returning, and Show flushes whatever the backend buffers. Widgets are
// stateless; layering is draw order, so background shapes (for example a
// gauge arc) must be drawn before text that overlaps them.
//
// The engine depends only on the Device contract. Optional backend
// capabilities (rect fills, native arcs, true scaled text) are detected with
// interface assertions and emulated when absent. A Screen and its Device are
// single-owner: concurrent use of one pair needs external locking, while
// independent pairs are free to run in parallel.
package screen
