// Package fixtures holds the reference pipe grids shared by the package tests,
// together with their known furthest distances and enclosed counts.
package fixtures

// Fixture is a grid text with its expected results.
type Fixture struct {
	Name     string
	Text     string
	Furthest int
	Enclosed int
}

// Square is the plain 5×5 loop around a single interior cell.
const Square = `.....
.S-7.
.|.|.
.L-J.
.....
`

// SquareNoisy is Square surrounded by dead pipes that touch the loop.
const SquareNoisy = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

// Twisted is a 5×5 loop whose anchor sits on the left edge.
const Twisted = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`

// Squeeze has two interior pockets reachable from outside only by
// squeezing between parallel pipes; they are exterior.
const Squeeze = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

// SqueezeTight is Squeeze with no gap between the two lower pipes.
const SqueezeTight = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

// Layered is the 20×10 layered loop with dead pipes beside it.
const Layered = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

// Junk is the 20×10 loop buried in dead pipes everywhere.
const Junk = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`

// All lists every valid fixture with its expected results.
var All = []Fixture{
	{Name: "Square", Text: Square, Furthest: 4, Enclosed: 1},
	{Name: "SquareNoisy", Text: SquareNoisy, Furthest: 4, Enclosed: 1},
	{Name: "Twisted", Text: Twisted, Furthest: 8, Enclosed: 1},
	{Name: "Squeeze", Text: Squeeze, Furthest: 23, Enclosed: 4},
	{Name: "SqueezeTight", Text: SqueezeTight, Furthest: 22, Enclosed: 4},
	{Name: "Layered", Text: Layered, Furthest: 70, Enclosed: 8},
	{Name: "Junk", Text: Junk, Furthest: 80, Enclosed: 10},
}
