package graph

import (
	"github.com/timtadh/data-structures/errors"
)

// MaxRings bounds how many rings a single graph can flag. Each ring gets
// one bit in the Rings field of its member vertices and edges.
const MaxRings = 32

// MarkRings finds the simple rings of g with between min and max vertices
// and sets the per-ring bit on every vertex and edge of each ring. Rings
// found beyond MaxRings are dropped with a warning. Returns the number of
// rings marked.
func (g *Graph) MarkRings(min, max int) int {
	if min < 3 {
		min = 3
	}
	for i := range g.V {
		g.V[i].Rings = 0
	}
	for i := range g.E {
		g.E[i].Rings = 0
	}
	count := 0
	overflow := false
	mark := func(vpath []int, epath []int) {
		if count >= MaxRings {
			overflow = true
			return
		}
		bit := uint32(1) << uint(count)
		for _, v := range vpath {
			g.V[v].Rings |= bit
		}
		for _, e := range epath {
			g.E[e].Rings |= bit
		}
		count++
	}
	// each ring is rooted at its smallest vertex id and walked with the
	// smaller of its two neighbors of the root first, so it is found once
	vpath := make([]int, 0, max)
	epath := make([]int, 0, max)
	onpath := make([]bool, len(g.V))
	var visit func(root, u int)
	visit = func(root, u int) {
		vpath = append(vpath, u)
		onpath[u] = true
		for _, eid := range g.Adj[u] {
			if len(epath) > 0 && eid == epath[len(epath)-1] {
				continue
			}
			w := g.E[eid].Other(u)
			if w == root {
				if len(vpath) >= min {
					if vpath[1] < vpath[len(vpath)-1] {
						mark(vpath, append(epath, eid))
					}
				}
				continue
			}
			if w < root || onpath[w] {
				continue
			}
			if len(vpath) >= max {
				continue
			}
			epath = append(epath, eid)
			visit(root, w)
			epath = epath[:len(epath)-1]
		}
		onpath[u] = false
		vpath = vpath[:len(vpath)-1]
	}
	for root := 0; root < len(g.V); root++ {
		visit(root, root)
	}
	if overflow {
		errors.Logf("WARNING", "graph %v has more than %v rings, extra rings unmarked", g.Id, MaxRings)
	}
	return count
}

// InRing reports whether the edge participates in any marked ring.
func (e *Edge) InRing() bool {
	return e.Rings != 0
}
