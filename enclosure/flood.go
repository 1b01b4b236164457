package enclosure

import "github.com/katalvlaran/pipeloop/pipegrid"

// scale is the side of the block each cell is upscaled to. Three leaves a
// free lane between parallel pipes so the flood can squeeze through.
const scale = 3

// FloodCount counts the Empty cells of a cleaned grid that lie inside the
// loop, independently of the parity scan.
//
// Behavior:
//  1. Upscale each cell to a 3×3 block; a wall blocks its centre and the
//     two arms its pipe opens toward.
//  2. BFS from every open block on the border of the upscaled grid.
//  3. An Empty cell is inside iff its centre block was never reached.
//
// Complexity: O(9·W×H) time and memory.
func FloodCount(g *pipegrid.Grid) int {
	if g == nil || g.Size() == 0 {
		return 0
	}
	h, w := g.Rows()*scale, g.Cols()*scale
	blocked := make([]bool, h*w)
	for i := 0; i < g.Size(); i++ {
		p := g.Coordinate(i)
		cell := g.At(p)
		if !cell.IsConduit() {
			continue
		}
		cy, cx := p.Row*scale+1, p.Col*scale+1
		blocked[cy*w+cx] = true
		a, b := cell.Shape.Directions()
		for _, d := range [2]pipegrid.Direction{a, b} {
			dr, dc := d.Offset()
			blocked[(cy+dr)*w+cx+dc] = true
		}
	}

	// Multi-source BFS from the open border blocks.
	seen := make([]bool, h*w)
	queue := make([]int, 0, 2*(h+w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y != 0 && y != h-1 && x != 0 && x != w-1 {
				continue
			}
			i := y*w + x
			if !blocked[i] && !seen[i] {
				seen[i] = true
				queue = append(queue, i)
			}
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		uy, ux := u/w, u%w
		for _, d := range pipegrid.Directions {
			dr, dc := d.Offset()
			vy, vx := uy+dr, ux+dc
			if vy < 0 || vy >= h || vx < 0 || vx >= w {
				continue
			}
			vi := vy*w + vx
			if !blocked[vi] && !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	count := 0
	for i := 0; i < g.Size(); i++ {
		p := g.Coordinate(i)
		if g.At(p).Kind != pipegrid.Empty {
			continue
		}
		if !seen[(p.Row*scale+1)*w+p.Col*scale+1] {
			count++
		}
	}
	return count
}
