package graph

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// A Graph is one host graph of the mining database. Vertices and edges live
// in flat arenas and refer to each other by index; Adj[v] lists the edge
// indices incident to v. Edges are undirected, Src/Targ is storage order
// only.
type Graph struct {
	Id     int
	Cls    int
	Weight float64
	V      []Vertex
	E      []Edge
	Adj    [][]int
	rawV   []int
	rawE   []int
}

type Vertex struct {
	Idx   int
	Color int
	Rings uint32
}

type Edge struct {
	Src, Targ, Color int
	Rings            uint32
}

func NewGraph(V, E int) *Graph {
	return &Graph{
		V:   make([]Vertex, 0, V),
		E:   make([]Edge, 0, E),
		Adj: make([][]int, 0, V),
	}
}

func (g *Graph) AddVertex(color int) *Vertex {
	g.V = append(g.V, Vertex{
		Idx:   len(g.V),
		Color: color,
	})
	g.Adj = append(g.Adj, make([]int, 0, 5))
	return &g.V[len(g.V)-1]
}

func (g *Graph) AddEdge(src, targ *Vertex, color int) *Edge {
	g.E = append(g.E, Edge{
		Src:   src.Idx,
		Targ:  targ.Idx,
		Color: color,
	})
	eid := len(g.E) - 1
	g.Adj[src.Idx] = append(g.Adj[src.Idx], eid)
	g.Adj[targ.Idx] = append(g.Adj[targ.Idx], eid)
	return &g.E[eid]
}

// Other gives the endpoint of e opposite to the vertex id v.
func (e *Edge) Other(v int) int {
	if e.Src == v {
		return e.Targ
	}
	return e.Src
}

func (e *Edge) Has(v int) bool {
	return e.Src == v || e.Targ == v
}

func (g *Graph) Connected() bool {
	if len(g.V) == 0 {
		return false
	}
	seen := make([]bool, len(g.V))
	stack := make([]int, 0, len(g.V))
	stack = append(stack, 0)
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eid := range g.Adj[u] {
			v := g.E[eid].Other(u)
			if !seen[v] {
				seen[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}
	return count == len(g.V)
}

// Check rejects graphs the miner cannot take: empty, edgeless, or
// disconnected ones. Callers filter on this before mining starts.
func (g *Graph) Check() error {
	if len(g.V) == 0 {
		return errors.Errorf("graph %v has no vertices", g.Id)
	}
	if len(g.E) == 0 {
		return errors.Errorf("graph %v has no edges", g.Id)
	}
	if !g.Connected() {
		return errors.Errorf("graph %v is not connected", g.Id)
	}
	return nil
}

func (g *Graph) saveRaw() {
	if g.rawV != nil {
		return
	}
	g.rawV = make([]int, len(g.V))
	g.rawE = make([]int, len(g.E))
	for i := range g.V {
		g.rawV[i] = g.V[i].Color
	}
	for i := range g.E {
		g.rawE[i] = g.E[i].Color
	}
}

// Decode restores the raw type codes, undoing any rank encoding or type
// masking applied for a previous mining run.
func (g *Graph) Decode() {
	if g.rawV == nil {
		return
	}
	for i := range g.V {
		g.V[i].Color = g.rawV[i]
	}
	for i := range g.E {
		g.E[i].Color = g.rawE[i]
	}
	g.rawV = nil
	g.rawE = nil
}

func (g *Graph) String() string {
	V := make([]string, 0, len(g.V))
	E := make([]string, 0, len(g.E))
	for i := range g.V {
		V = append(V, fmt.Sprintf("(%v:%v)", g.V[i].Idx, g.V[i].Color))
	}
	for i := range g.E {
		E = append(E, fmt.Sprintf("[%v--%v:%v]", g.E[i].Src, g.E[i].Targ, g.E[i].Color))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(g.E), len(g.V), strings.Join(V, ""), strings.Join(E, ""))
}
