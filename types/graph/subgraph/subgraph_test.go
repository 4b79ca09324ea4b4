package subgraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/TrustAGI-Lab/fragmine/types/graph"
)

// host is a triangle 0-1-2 with a pendant vertex 3 hanging off vertex 0.
// vertex colors are 0 (A), 1 (B), 2 (C), 3 (D); every edge has color 0.
func host(t *testing.T) (*graph.Graph, *graph.Indices) {
	g := graph.NewGraph(4, 4)
	a := g.AddVertex(0)
	b := g.AddVertex(1)
	c := g.AddVertex(2)
	d := g.AddVertex(3)
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	g.AddEdge(a, c, 0)
	g.AddEdge(a, d, 0)
	return g, g.Prepare()
}

func buildTriangle(t *testing.T, order []int) *SubGraph {
	x := assert.New(t)
	b := Build()
	v := make([]*Vertex, 3)
	for _, color := range order {
		v[color] = b.AddVertex(color)
	}
	b.AddEdge(v[0], v[1], 0)
	b.AddEdge(v[1], v[2], 0)
	b.AddEdge(v[0], v[2], 0)
	sg, err := b.Build()
	x.Nil(err)
	return sg
}

func TestBuildCanonizes(t *testing.T) {
	x := assert.New(t)
	sg1 := buildTriangle(t, []int{0, 1, 2})
	sg2 := buildTriangle(t, []int{2, 0, 1})
	t.Log(sg1)
	t.Log(sg2)
	x.Equal(0, CompareCode(sg1, sg2), "vertex insertion order changed the code")
	x.Equal(sg1.Label(), sg2.Label())
	x.True(sg1.IsCanonic())
}

func TestBuildRejectsDisconnected(t *testing.T) {
	x := assert.New(t)
	b := Build()
	b.AddVertex(0)
	b.AddVertex(1)
	_, err := b.Build()
	x.NotNil(err)
	_, err = Build().Build()
	x.NotNil(err)
}

func TestIsCanonicRejectsBadRoot(t *testing.T) {
	x := assert.New(t)
	// root color 1 but the pattern contains color 0, the minimal code
	// must start at a color 0 vertex
	sg := assemble(
		[]Vertex{{Idx: 0, Color: 1}, {Idx: 1, Color: 0}},
		[]Edge{{Src: 0, Targ: 1, Color: 0}},
	)
	x.False(sg.IsCanonic())
	flipped := assemble(
		[]Vertex{{Idx: 0, Color: 0}, {Idx: 1, Color: 1}},
		[]Edge{{Src: 0, Targ: 1, Color: 0}},
	)
	x.True(flipped.IsCanonic())
}

func TestCmpEntSourceDescends(t *testing.T) {
	x := assert.New(t)
	deep := cent{Targ: 2, Src: 1, Color: 0, TargColor: 0}
	shallow := cent{Targ: 2, Src: 0, Color: 0, TargColor: 0}
	x.True(cmpEnt(&deep, &shallow) < 0, "deeper source must order first")
	ring := cent{Targ: 1, Src: 0, Color: 0, TargColor: 0, Ring: true}
	plain := cent{Targ: 1, Src: 0, Color: 0, TargColor: 0, Ring: false}
	x.True(cmpEnt(&plain, &ring) < 0, "ring flag orders last")
}

func TestExtend(t *testing.T) {
	x := assert.New(t)
	sg := FromVertex(0)
	sg, err := sg.Extend(&Extension{Src: 0, Targ: 1, Color: 0, TargColor: 1})
	x.Nil(err)
	x.Equal(2, len(sg.V))
	x.Equal(1, len(sg.E))

	_, err = sg.Extend(&Extension{Src: 0, Targ: 5, Color: 0, TargColor: 1})
	x.NotNil(err, "target past the fresh vertex index must fail")
	_, err = sg.Extend(&Extension{Src: 1, Targ: 0, Color: 0, TargColor: 7})
	x.NotNil(err, "ring closing extension with wrong target color must fail")
}

func TestOrbitsOfSymmetricPattern(t *testing.T) {
	x := assert.New(t)
	sg := assemble(
		[]Vertex{{Idx: 0, Color: 0}, {Idx: 1, Color: 0}},
		[]Edge{{Src: 0, Targ: 1, Color: 0}},
	)
	canonic, orbits := sg.Canonize()
	x.True(canonic)
	x.Equal([]int{1, 1}, orbits, "both ends of a same colored edge share an orbit")
}

func buildEdge(t *testing.T, srcColor, targColor, edgeColor int) *SubGraph {
	x := assert.New(t)
	b := Build()
	u := b.AddVertex(srcColor)
	v := b.AddVertex(targColor)
	b.AddEdge(u, v, edgeColor)
	sg, err := b.Build()
	x.Nil(err)
	return sg
}

func TestEmbeddings(t *testing.T) {
	x := assert.New(t)
	_, indices := host(t)

	edge := buildEdge(t, 0, 1, 0)
	embs := edge.Embeddings(indices, 0)
	x.Equal(1, len(embs))
	x.True(edge.Embedded(indices))
	x.Equal(1, edge.EmbeddingCount(indices))

	tri := buildTriangle(t, []int{0, 1, 2})
	x.Equal(1, len(tri.Embeddings(indices, 0)))
	for _, emb := range tri.Embeddings(indices, 0) {
		x.True(emb.Exists(indices))
	}

	absent := buildEdge(t, 0, 7, 0)
	x.False(absent.Embedded(indices))
	x.Equal(0, absent.EmbeddingCount(indices))
}

func TestEmbeddingsOfSymmetricPattern(t *testing.T) {
	x := assert.New(t)
	g := graph.NewGraph(2, 1)
	a := g.AddVertex(0)
	b := g.AddVertex(0)
	g.AddEdge(a, b, 0)
	indices := g.Prepare()

	sg := buildEdge(t, 0, 0, 0)
	embs := sg.Embeddings(indices, 0)
	x.Equal(2, len(embs), "both orientations are distinct occurrences")
}

func TestEmbeddedMatchesRingMarks(t *testing.T) {
	x := assert.New(t)
	g := graph.NewGraph(3, 3)
	a := g.AddVertex(0)
	b := g.AddVertex(0)
	c := g.AddVertex(0)
	g.AddEdge(a, b, 0)
	g.AddEdge(b, c, 0)
	g.AddEdge(a, c, 0)
	g.MarkRings(3, 8)
	indices := g.Prepare()

	plain := assemble(
		[]Vertex{{Idx: 0, Color: 0}, {Idx: 1, Color: 0}},
		[]Edge{{Src: 0, Targ: 1, Color: 0}},
	)
	x.False(plain.Embedded(indices), "a chain bond may not match a ring bond")

	ringed := assemble(
		[]Vertex{{Idx: 0, Color: 0}, {Idx: 1, Color: 0}},
		[]Edge{{Src: 0, Targ: 1, Color: 0, Ring: true}},
	)
	x.True(ringed.Embedded(indices))
	x.Equal(6, len(ringed.Embeddings(indices, 0)))
	emb := ringed.Embed(indices, 0)
	x.NotNil(emb)
	x.True(emb.Exists(indices))
	x.False((&Embedding{SG: plain, Gidx: 0, Ids: []int{0, 1}, EIds: []int{0}}).Exists(indices),
		"a chain bond mapping onto a ring bond must not verify")
}

func TestTranslate(t *testing.T) {
	x := assert.New(t)
	_, indices := host(t)
	// a pattern deliberately out of code order
	sg := assemble(
		[]Vertex{{Idx: 0, Color: 1}, {Idx: 1, Color: 0}},
		[]Edge{{Src: 0, Targ: 1, Color: 0}},
	)
	emb := sg.Embed(indices, 0)
	x.NotNil(emb)
	csg, vperm, eperm := sg.MakeCanonic()
	x.True(csg.IsCanonic())
	translated := emb.Translate(csg, vperm, eperm)
	x.True(translated.Exists(indices))
}
