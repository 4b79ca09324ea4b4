package graph

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

type IdColorColor struct {
	Id, EdgeColor, VertexColor int
}

type EdgeKey struct {
	A, B, Color int
}

// Indices hold the adjacency state the embedding search needs: vertices by
// color, neighbors by (vertex, edge color, neighbor color), and edge
// existence. Build them with Prepare before mining or containment tests.
type Indices struct {
	G             *Graph
	ColorIndex    map[int][]int
	NeighborIndex map[IdColorColor][]int
	EdgeIndex     map[EdgeKey]int
	freq          map[int]int
}

func edgeKey(a, b, color int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b, Color: color}
}

// Prepare builds the search indices for g. The indices reflect the colors
// g has right now, so re-run it after Encode, MaskTypes, or Decode.
func (g *Graph) Prepare() *Indices {
	i := &Indices{
		G:             g,
		ColorIndex:    make(map[int][]int),
		NeighborIndex: make(map[IdColorColor][]int),
		EdgeIndex:     make(map[EdgeKey]int),
		freq:          make(map[int]int),
	}
	for idx := range g.V {
		u := &g.V[idx]
		i.ColorIndex[u.Color] = append(i.ColorIndex[u.Color], u.Idx)
		i.freq[u.Color]++
	}
	for eid := range g.E {
		e := &g.E[eid]
		sc := g.V[e.Src].Color
		tc := g.V[e.Targ].Color
		i.EdgeIndex[edgeKey(e.Src, e.Targ, e.Color)] = eid
		i.NeighborIndex[IdColorColor{e.Src, e.Color, tc}] = append(i.NeighborIndex[IdColorColor{e.Src, e.Color, tc}], e.Targ)
		i.NeighborIndex[IdColorColor{e.Targ, e.Color, sc}] = append(i.NeighborIndex[IdColorColor{e.Targ, e.Color, sc}], e.Src)
	}
	return i
}

func (i *Indices) ColorFrequency(color int) int {
	return i.freq[color]
}

// EdgeMatches reports whether an edge between a and b with the color
// exists and its ring marking equals ring. Hosts prepared without ring
// marking have every edge unmarked, so patterns without ring flags match
// them unchanged.
func (i *Indices) EdgeMatches(a, b, color int, ring bool) bool {
	eid, has := i.EdgeIndex[edgeKey(a, b, color)]
	if !has {
		return false
	}
	return i.G.E[eid].InRing() == ring
}

// EdgeId gives the edge index between host vertices a and b with the given
// color, or -1.
func (i *Indices) EdgeId(a, b, color int) int {
	if eid, has := i.EdgeIndex[edgeKey(a, b, color)]; has {
		return eid
	}
	return -1
}

// Neighbors lists the vertices adjacent to id over an edge of edgeColor
// whose own color is vertexColor, excluding any ids in exclude.
func (i *Indices) Neighbors(id, edgeColor, vertexColor int, exclude []int) []int {
	candidates := i.NeighborIndex[IdColorColor{id, edgeColor, vertexColor}]
	if len(candidates) == 0 {
		return nil
	}
	ex := set.NewSortedSet(len(exclude))
	for _, x := range exclude {
		ex.Add(types.Int(x))
	}
	out := make([]int, 0, len(candidates))
	for _, n := range candidates {
		if !ex.Has(types.Int(n)) {
			out = append(out, n)
		}
	}
	return out
}
