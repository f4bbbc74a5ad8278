// Package render rasterizes mapping tables and wiring permutations into PNG
// previews, so a layout can be eyeballed before any firmware byte leaves the
// machine.
//
// What:
//
//   - Preview — the design grid with unmapped cells dimmed, mapped cells
//     lit, an optional LED-order polyline, and optional LED index labels.
//   - WiringPreview — the wiring path across the design grid in hardware
//     order, start cell marked, direction arrowhead at the end.
//   - SavePNG — writes any produced image to disk.
//
// The renderer is a preview aid for the editor, not part of the mapping
// contract: nothing here feeds hardware export.
//
// Complexity: O(cells + LEDs) draw operations per image.
package render
