// Package render draws a search scene: the grid, its enclosures and turfs,
// the source, the destination and a found path.
//
// Two outputs share one Scene:
//
//   - Image / SavePNG: a raster plot with the origin at the bottom-left,
//     grid lines, polygon outlines, the path as connected segments and
//     discs at both endpoints.
//   - Terminal: one rune per cell on any Canvas (a tcell.Screen satisfies it).
//
// Rendering never mutates the scene.
package render
