package subgraph

import (
	"github.com/timtadh/data-structures/errors"
)

// Builder assembles a pattern by hand, for query patterns and tests. Build
// rewrites the result into canonical code order.
type Builder struct {
	V []Vertex
	E []Edge
}

func Build() *Builder {
	return &Builder{
		V: make([]Vertex, 0, 10),
		E: make([]Edge, 0, 10),
	}
}

func (b *Builder) AddVertex(color int) *Vertex {
	b.V = append(b.V, Vertex{
		Idx:   len(b.V),
		Color: color,
	})
	return &b.V[len(b.V)-1]
}

func (b *Builder) AddEdge(src, targ *Vertex, color int) *Edge {
	b.E = append(b.E, Edge{
		Src:   src.Idx,
		Targ:  targ.Idx,
		Color: color,
	})
	return &b.E[len(b.E)-1]
}

func (b *Builder) Build() (*SubGraph, error) {
	V := make([]Vertex, len(b.V))
	E := make([]Edge, len(b.E))
	copy(V, b.V)
	copy(E, b.E)
	sg := assemble(V, E)
	if len(sg.V) == 0 {
		return nil, errors.Errorf("empty pattern")
	}
	if !sg.Connected() {
		return nil, errors.Errorf("pattern is not connected: %v", sg)
	}
	csg, _, _ := sg.MakeCanonic()
	return csg, nil
}
