package lattice

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/TrustAGI-Lab/fragmine/types/graph"
	"github.com/TrustAGI-Lab/fragmine/types/graph/subgraph"
)

func testDb(t *testing.T) *graph.Database {
	mk := func(id int) *graph.Graph {
		g := graph.NewGraph(3, 3)
		a := g.AddVertex(0)
		b := g.AddVertex(1)
		g.AddEdge(a, b, 0)
		g.Id = id
		return g
	}
	db := &graph.Database{
		Graphs: []*graph.Graph{mk(0), mk(1)},
		Labels: graph.NewLabels(),
	}
	db.Indices = make([]*graph.Indices, len(db.Graphs))
	for i, g := range db.Graphs {
		db.Indices[i] = g.Prepare()
	}
	return db
}

func edgePattern(t *testing.T) *subgraph.SubGraph {
	x := assert.New(t)
	b := subgraph.Build()
	u := b.AddVertex(0)
	v := b.AddVertex(1)
	b.AddEdge(u, v, 0)
	sg, err := b.Build()
	x.Nil(err)
	return sg
}

func TestAddEmbeddingChains(t *testing.T) {
	x := assert.New(t)
	pat := edgePattern(t)
	f := NewFragment(nil, nil, pat)
	f.AddEmbedding(&subgraph.Embedding{SG: pat, Gidx: 0, Ids: []int{0, 1}, EIds: []int{0}})
	f.AddEmbedding(&subgraph.Embedding{SG: pat, Gidx: 0, Ids: []int{0, 1}, EIds: []int{0}})
	f.AddEmbedding(&subgraph.Embedding{SG: pat, Gidx: 1, Ids: []int{0, 1}, EIds: []int{0}})

	x.Equal(2, f.Support(), "support counts graphs, not embeddings")
	x.Equal(3, f.EmbeddingCount())
	x.Equal(2, f.Embs[0].ChainLength(), "same graph embeddings chain on the head")
	x.Equal(1, f.Embs[1].ChainLength())
	x.Equal(1, f.Level(), "level is the edge count")
}

func TestVerify(t *testing.T) {
	x := assert.New(t)
	db := testDb(t)
	pat := edgePattern(t)
	f := NewFragment(nil, nil, pat)
	for gidx := range db.Graphs {
		f.AddEmbedding(&subgraph.Embedding{SG: pat, Gidx: gidx, Ids: []int{0, 1}, EIds: []int{0}})
	}
	x.Nil(f.Verify(db))

	bad := NewFragment(nil, nil, pat)
	bad.AddEmbedding(&subgraph.Embedding{SG: pat, Gidx: 0, Ids: []int{0, 0}, EIds: []int{0}})
	x.NotNil(bad.Verify(db), "a non injective embedding must fail")

	missing := NewFragment(nil, nil, pat)
	missing.AddEmbedding(&subgraph.Embedding{SG: pat, Gidx: 5, Ids: []int{0, 1}, EIds: []int{0}})
	x.NotNil(missing.Verify(db), "an unknown graph index must fail")
}
