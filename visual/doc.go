// SPDX-License-Identifier: EPL-2.0

// Package visual renders an event history as abstract art.
//
// Three styles are available:
//
//   - particle: every commit is a glowing dot placed by time (x) and
//     relative activity (y), colored warm for additions and cool for
//     deletions, with faint connectors between temporal neighbors
//   - flow: wave strands per month, displaced by commit density
//   - heatmap: a month-by-month activity heat grid
//
//	r := visual.NewRenderer()
//	r.Style = visual.StyleHeatmap
//	img := r.Render(events)
//	png.Encode(out, img)
//
// Rendering is fully deterministic; the same events and settings always
// produce identical pixels. Shapes are rasterized with
// golang.org/x/image/vector.
package visual
