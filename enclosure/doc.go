// Package enclosure classifies the cells of a pipe grid as inside or outside
// the traced loop.
//
// What:
//
//   - Clean drops every conduit that is not a wall of the loop, so dead pipes
//     never take part in the scan.
//   - Classify counts interior cells with a row-wise crossing-parity scan.
//   - Enclosed lists those cells in row-major order.
//   - FloodCount reaches the same count independently, by flooding an
//     upscaled copy of the grid from its border.
//
// Crossing rule:
//
//	|      toggles inside
//	-      never toggles
//	F, L   open a horizontal run and remember the opener
//	7, J   close the run; F…J and L…7 cross the loop (toggle),
//	       F…7 and L…J touch it and turn back (no toggle)
//
// Complexity:
//
//   - Clean, Classify, Enclosed: O(W×H) time, single pass.
//   - FloodCount: O(9·W×H) time and memory.
package enclosure
