package graph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

func hexRing(t *testing.T) *Graph {
	g := NewGraph(8, 8)
	v := make([]*Vertex, 6)
	for i := range v {
		v[i] = g.AddVertex(0)
	}
	for i := range v {
		g.AddEdge(v[i], v[(i+1)%6], 0)
	}
	return g
}

func TestCheck(t *testing.T) {
	x := assert.New(t)
	g := NewGraph(2, 1)
	x.NotNil(g.Check(), "empty graph must fail")
	a := g.AddVertex(0)
	b := g.AddVertex(1)
	x.NotNil(g.Check(), "edgeless graph must fail")
	g.AddEdge(a, b, 0)
	x.Nil(g.Check())
	g.AddVertex(2)
	x.NotNil(g.Check(), "disconnected graph must fail")
}

func TestMarkRings(t *testing.T) {
	x := assert.New(t)
	g := hexRing(t)
	// a tail on the ring
	tail := g.AddVertex(1)
	g.AddEdge(&g.V[0], tail, 0)

	count := g.MarkRings(3, 8)
	x.Equal(1, count)
	for i := 0; i < 6; i++ {
		x.True(g.E[i].InRing(), "ring edge %v unmarked", i)
		x.NotEqual(uint32(0), g.V[i].Rings)
	}
	x.False(g.E[6].InRing(), "tail edge must stay unmarked")
	x.Equal(uint32(0), g.V[tail.Idx].Rings)
}

func TestMarkRingsSizeBounds(t *testing.T) {
	x := assert.New(t)
	g := hexRing(t)
	x.Equal(0, g.MarkRings(3, 5), "a six ring is over the max")
	x.False(g.E[0].InRing())
	x.Equal(0, g.MarkRings(7, 8), "a six ring is under the min")
	x.Equal(1, g.MarkRings(3, 6))
}

func TestMarkRingsChain(t *testing.T) {
	x := assert.New(t)
	g := NewGraph(4, 3)
	a := g.AddVertex(0)
	b := g.AddVertex(0)
	c := g.AddVertex(0)
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	x.Equal(0, g.MarkRings(3, 8), "a chain has no rings")
}

func TestCoderRanksByFrequency(t *testing.T) {
	x := assert.New(t)
	g := NewGraph(4, 3)
	// color 7 twice, color 3 once, color 9 once
	a := g.AddVertex(7)
	b := g.AddVertex(7)
	c := g.AddVertex(3)
	d := g.AddVertex(9)
	g.AddEdge(a, b, 5)
	g.AddEdge(b, c, 5)
	g.AddEdge(c, d, 2)

	coder := NewCoder([]*Graph{g})
	r7, has := coder.VertexColor(7)
	x.True(has)
	x.Equal(0, r7, "most frequent color takes rank 0")
	r3, _ := coder.VertexColor(3)
	r9, _ := coder.VertexColor(9)
	x.Equal(1, r3, "frequency ties break on the raw code")
	x.Equal(2, r9)
	re5, _ := coder.EdgeColor(5)
	x.Equal(0, re5)
	x.Equal(7, coder.RawVertexColor(0))
	x.Equal(-1, coder.RawVertexColor(99))

	coder.Encode(g)
	x.Equal(0, g.V[0].Color)
	x.Equal(1, g.V[2].Color)
	g.Decode()
	x.Equal(7, g.V[0].Color)
	x.Equal(3, g.V[2].Color)
}

func TestMaskTypes(t *testing.T) {
	x := assert.New(t)
	g := NewGraph(2, 1)
	a := g.AddVertex(0x7f | 0x80) // element bits plus an annotation bit
	b := g.AddVertex(6)
	g.AddEdge(a, b, 0x3 | 0x4)

	g.MaskTypes(ChemicalMasks)
	x.Equal(0x7f, g.V[0].Color)
	x.Equal(6, g.V[1].Color)
	x.Equal(0x3, g.E[0].Color)
	g.Decode()
	x.Equal(0x7f|0x80, g.V[0].Color)

	g2 := NewGraph(1, 0)
	g2.AddVertex(0xff)
	g2.MaskTypes(GenericMasks)
	x.Equal(0xff, g2.V[0].Color, "generic masks keep every bit")
}

const vegFixture = `graph	{"cls": 1}
vertex	{"id": 10, "label": "C"}
vertex	{"id": 11, "label": "C"}
vertex	{"id": 12, "label": "O"}
edge	{"src": 10, "targ": 11, "label": "1"}
edge	{"src": 11, "targ": 12, "label": "2"}
graph	{}
vertex	{"id": 1, "label": "C"}
vertex	{"id": 2, "label": "N"}
edge	{"src": 1, "targ": 2, "label": "1"}
`

func stringInput(s string) Input {
	return func() (io.Reader, func()) {
		return strings.NewReader(s), func() {}
	}
}

func TestLoadVeg(t *testing.T) {
	x := assert.New(t)
	db, err := LoadVeg(stringInput(vegFixture), nil)
	x.Nil(err)
	x.Equal(2, len(db.Graphs))
	g := db.Graphs[0]
	x.Equal(1, g.Cls)
	x.Equal(3, len(g.V))
	x.Equal(2, len(g.E))
	x.Equal(g.V[0].Color, g.V[1].Color, "equal labels share a color")
	x.NotEqual(g.V[0].Color, g.V[2].Color)
	x.Equal(db.Graphs[1].V[0].Color, g.V[0].Color, "the label dictionary spans graphs")
	x.Equal(1.0, g.Weight)
}

func TestLoadVegDropsBadGraphs(t *testing.T) {
	x := assert.New(t)
	bad := `graph	{}
vertex	{"id": 1, "label": "C"}
graph	{}
vertex	{"id": 1, "label": "C"}
vertex	{"id": 2, "label": "C"}
edge	{"src": 1, "targ": 2, "label": "1"}
`
	db, err := LoadVeg(stringInput(bad), nil)
	x.Nil(err)
	x.Equal(1, len(db.Graphs), "the edgeless graph is dropped")
}

func TestLoadVegErrors(t *testing.T) {
	x := assert.New(t)
	_, err := LoadVeg(stringInput("vertex\t{\"id\": 1, \"label\": \"C\"}\n"), nil)
	x.NotNil(err, "vertex before any graph line must error")
	_, err = LoadVeg(stringInput("wat\t{}\n"), nil)
	x.NotNil(err, "unknown line type must error")
}

func TestPrepare(t *testing.T) {
	x := assert.New(t)
	db, err := LoadVeg(stringInput(vegFixture), nil)
	x.Nil(err)
	db.Prepare(3, 0)
	x.Equal(2, len(db.Indices))
	x.NotNil(db.Coder)
	// C is the most frequent vertex label, so rank 0
	x.Equal(2, db.Indices[0].ColorFrequency(0))
	x.Equal("C", db.VertexName(0))
	x.Equal("1", db.EdgeName(0))
}
