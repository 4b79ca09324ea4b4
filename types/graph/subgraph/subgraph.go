package subgraph

import (
	"encoding/binary"
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/TrustAGI-Lab/fragmine/types/graph"
)

// A SubGraph is a pattern. Its vertex and edge order IS its DFS code word:
// V[0] is the spanning tree root and E[i] is the i-th code tuple
// (Targ, Src, Color, V[Targ].Color). A forward edge has Targ equal to the
// next fresh vertex index; a ring closing edge has both endpoints already
// present with Src the deeper one. See code.go for the tuple order.
type SubGraph struct {
	V   []Vertex
	E   []Edge
	Adj [][]int
}

type Vertex struct {
	Idx   int
	Color int
}

type Edge struct {
	Src, Targ, Color int
	Ring             bool
}

func EmptySubGraph() *SubGraph {
	return &SubGraph{
		V:   make([]Vertex, 0),
		E:   make([]Edge, 0),
		Adj: make([][]int, 0),
	}
}

// FromVertex is the pattern of a single vertex, the root fragment shape.
func FromVertex(color int) *SubGraph {
	return &SubGraph{
		V:   []Vertex{{Idx: 0, Color: color}},
		E:   make([]Edge, 0),
		Adj: [][]int{{}},
	}
}

func assemble(V []Vertex, E []Edge) *SubGraph {
	sg := &SubGraph{
		V:   V,
		E:   E,
		Adj: make([][]int, len(V)),
	}
	for i := range sg.Adj {
		sg.Adj[i] = make([]int, 0, 5)
	}
	for i := range E {
		sg.Adj[E[i].Src] = append(sg.Adj[E[i].Src], i)
		sg.Adj[E[i].Targ] = append(sg.Adj[E[i].Targ], i)
	}
	return sg
}

func (e *Edge) Other(v int) int {
	if e.Src == v {
		return e.Targ
	}
	return e.Src
}

func (sg *SubGraph) HasEdge(src, targ, color int) bool {
	for _, eid := range sg.Adj[src] {
		e := &sg.E[eid]
		if e.Color == color && e.Other(src) == targ {
			return true
		}
	}
	return false
}

// Extend materializes the pattern grown by ext. A node adding extension
// (ext.Targ == len(sg.V)) appends a vertex and a forward edge; a ring
// closing one appends only the back edge. The result keeps code order, so
// check IsCanonic on it before searching from it.
func (sg *SubGraph) Extend(ext *Extension) (*SubGraph, error) {
	V := make([]Vertex, len(sg.V), len(sg.V)+1)
	E := make([]Edge, len(sg.E), len(sg.E)+1)
	copy(V, sg.V)
	copy(E, sg.E)
	if ext.Targ == len(sg.V) {
		V = append(V, Vertex{Idx: ext.Targ, Color: ext.TargColor})
	} else if ext.Targ > len(sg.V) {
		return nil, errors.Errorf("extension target %v out of range for %v", ext.Targ, sg)
	} else if sg.V[ext.Targ].Color != ext.TargColor {
		return nil, errors.Errorf("extension target color mismatch %v on %v", ext, sg)
	}
	if ext.Src < 0 || ext.Src >= len(sg.V) {
		return nil, errors.Errorf("extension source %v out of range for %v", ext.Src, sg)
	}
	E = append(E, Edge{Src: ext.Src, Targ: ext.Targ, Color: ext.Color, Ring: ext.Ring})
	return assemble(V, E), nil
}

func (sg *SubGraph) Connected() bool {
	if len(sg.V) == 0 {
		return false
	}
	seen := make([]bool, len(sg.V))
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eid := range sg.Adj[u] {
			v := sg.E[eid].Other(u)
			if !seen[v] {
				seen[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}
	return count == len(sg.V)
}

// Label serializes the code word. Equal labels mean equal patterns, so the
// label is the dedup and store key everywhere.
func (sg *SubGraph) Label() []byte {
	size := 8 + len(sg.V)*4 + len(sg.E)*16
	label := make([]byte, size)
	binary.BigEndian.PutUint32(label[0:4], uint32(len(sg.E)))
	binary.BigEndian.PutUint32(label[4:8], uint32(len(sg.V)))
	off := 8
	for i, v := range sg.V {
		s := off + i*4
		binary.BigEndian.PutUint32(label[s:s+4], uint32(v.Color))
	}
	off += len(sg.V) * 4
	for i, edge := range sg.E {
		s := off + i*16
		binary.BigEndian.PutUint32(label[s:s+4], uint32(edge.Src))
		binary.BigEndian.PutUint32(label[s+4:s+8], uint32(edge.Targ))
		binary.BigEndian.PutUint32(label[s+8:s+12], uint32(edge.Color))
		ring := uint32(0)
		if edge.Ring {
			ring = 1
		}
		binary.BigEndian.PutUint32(label[s+12:s+16], ring)
	}
	return label
}

func (sg *SubGraph) String() string {
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for _, v := range sg.V {
		V = append(V, fmt.Sprintf("(%v:%v)", v.Idx, v.Color))
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf("[%v--%v:%v]", e.Src, e.Targ, e.Color))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(sg.E), len(sg.V), strings.Join(V, ""), strings.Join(E, ""))
}

// Pretty renders the pattern with the database's original label strings
// in place of the rank encoded colors.
func (sg *SubGraph) Pretty(db *graph.Database) string {
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for _, v := range sg.V {
		V = append(V, fmt.Sprintf("(%v:%v)", v.Idx, db.VertexName(v.Color)))
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf("[%v--%v:%v]", e.Src, e.Targ, db.EdgeName(e.Color)))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(sg.E), len(sg.V), strings.Join(V, ""), strings.Join(E, ""))
}
