// Package pipeloop finds the single pipe loop hidden in a character grid,
// measures how far its farthest point lies from the start, and counts the
// cells it encloses.
//
// What is pipeloop?
//
//	A small, pure-Go engine built from four stages:
//		• pipegrid/   : parse {| - L J 7 F . S} text into typed cells
//		• looptrace/  : infer the start cell's hidden pipe, walk the loop
//		• enclosure/  : drop dead pipes and count interior cells
//		• render/     : draw the cleaned loop, optionally in color
//
// The facade in this package runs them in order:
//
//	res, err := pipeloop.Solve(text)
//	// res.FurthestDistance, res.EnclosedCount
//
// Analyze returns every intermediate result for callers that want to render
// or inspect the loop.
//
// Quick ASCII example:
//
//	.....
//	.S-7.      S resolves to F; the loop is 8 steps long,
//	.|.|.      so the farthest cell is 4 steps away,
//	.L-J.      and one cell is enclosed.
//	.....
//
// The cmd/pipeloop binary wraps the same calls behind a CLI.
package pipeloop
