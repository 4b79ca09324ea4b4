package dfs

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/TrustAGI-Lab/fragmine/config"
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/miners/reporters"
	"github.com/TrustAGI-Lab/fragmine/types/graph"
)

// triangleDb builds n host graphs, each a triangle A-B-C over edge label
// "e". The first withD of them also carry a pendant D attached to A.
func triangleDb(t *testing.T, n, withD int) *graph.Database {
	labels := graph.NewLabels()
	graphs := make([]*graph.Graph, 0, n)
	for i := 0; i < n; i++ {
		g := graph.NewGraph(4, 4)
		a := g.AddVertex(labels.Color("A"))
		b := g.AddVertex(labels.Color("B"))
		c := g.AddVertex(labels.Color("C"))
		e := labels.Color("e")
		g.AddEdge(a, b, e)
		g.AddEdge(b, c, e)
		g.AddEdge(a, c, e)
		if i < withD {
			d := g.AddVertex(labels.Color("D"))
			g.AddEdge(a, d, e)
		}
		g.Id = i
		graphs = append(graphs, g)
	}
	return &graph.Database{Graphs: graphs, Labels: labels}
}

func mine(t *testing.T, db *graph.Database, conf *config.Config) []*lattice.Fragment {
	x := assert.New(t)
	if conf.RingAware {
		db.Prepare(conf.RingMin, conf.RingMax)
	} else {
		db.Prepare(0, 0)
	}
	m, err := NewMiner(conf, db)
	x.Nil(err)
	defer m.Close()
	collector := &reporters.Collector{}
	x.Nil(m.Mine(collector))
	return collector.Fragments
}

func TestMineTriangles(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 6, 0)
	frags := mine(t, db, &config.Config{Support: 6, MinVertices: 1})

	// 3 edges, 3 two-edge paths, 1 triangle; single vertices are never
	// reported
	x.Equal(7, len(frags))
	for _, f := range frags {
		x.Equal(6, f.Support(), "every pattern occurs in every graph: %v", f)
		x.Equal(6, f.EmbeddingCount())
	}
	triangles := 0
	for _, f := range frags {
		if len(f.Pat.E) == 3 {
			triangles++
			x.Equal(3, len(f.Pat.V))
		}
	}
	x.Equal(1, triangles)
}

func TestMineTriangleScenario(t *testing.T) {
	x := assert.New(t)
	// 10 graphs: 6 hold the triangle, 4 only the path A-B-C
	labels := graph.NewLabels()
	graphs := make([]*graph.Graph, 0, 10)
	for i := 0; i < 10; i++ {
		g := graph.NewGraph(3, 3)
		a := g.AddVertex(labels.Color("A"))
		b := g.AddVertex(labels.Color("B"))
		c := g.AddVertex(labels.Color("C"))
		e := labels.Color("e")
		g.AddEdge(a, b, e)
		g.AddEdge(b, c, e)
		if i < 6 {
			g.AddEdge(a, c, e)
		}
		g.Id = i
		graphs = append(graphs, g)
	}
	db := &graph.Database{Graphs: graphs, Labels: labels}
	frags := mine(t, db, &config.Config{Support: 5, MinVertices: 1})

	var triangle *lattice.Fragment
	for _, f := range frags {
		x.True(f.Support() >= 5, "pattern under the threshold reported: %v", f)
		if len(f.Pat.E) == 3 {
			x.Nil(triangle, "two triangle patterns reported")
			triangle = f
		}
	}
	x.NotNil(triangle)
	x.Equal(6, triangle.Support())

	// the reported support must agree with the containment test
	holds := 0
	for _, indices := range db.Indices {
		if triangle.Pat.Embedded(indices) {
			holds++
		}
	}
	x.Equal(triangle.Support(), holds)
}

func TestMineNoDuplicates(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 6, 0)
	frags := mine(t, db, &config.Config{Support: 6, MinVertices: 1})
	seen := make(map[string]bool)
	for _, f := range frags {
		label := string(f.Label())
		x.False(seen[label], "pattern reported twice: %v", f)
		seen[label] = true
	}
}

func TestMineSupportPruning(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 6, 3)
	frags := mine(t, db, &config.Config{Support: 6, MinVertices: 1})
	for _, f := range frags {
		for i := range f.Pat.V {
			x.NotEqual("D", db.VertexName(f.Pat.V[i].Color), "infrequent D leaked into %v", f)
		}
	}
	x.Equal(7, len(frags))

	db2 := triangleDb(t, 6, 3)
	frags2 := mine(t, db2, &config.Config{Support: 3, MinVertices: 1})
	hasD := false
	for _, f := range frags2 {
		for i := range f.Pat.V {
			if db2.VertexName(f.Pat.V[i].Color) == "D" {
				hasD = true
			}
		}
	}
	x.True(hasD, "lowering support must admit D patterns")
	x.True(len(frags2) > 7)
}

func TestMineAntiMonotone(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 6, 3)
	frags := mine(t, db, &config.Config{Support: 3, MinVertices: 1})
	for _, f := range frags {
		if f.Parent == nil {
			continue
		}
		x.True(f.Support() <= f.Parent.Support(),
			"child %v more frequent than parent %v", f, f.Parent)
	}
}

func TestMineSizeBounds(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 6, 0)
	frags := mine(t, db, &config.Config{Support: 6, MinVertices: 3})
	// 3 two-edge paths and the triangle
	x.Equal(4, len(frags))
	for _, f := range frags {
		x.True(len(f.Pat.V) >= 3)
	}

	db2 := triangleDb(t, 6, 0)
	frags2 := mine(t, db2, &config.Config{Support: 6, MinVertices: 1, MaxVertices: 2})
	// the 3 edges, nothing can grow past two vertices
	x.Equal(3, len(frags2))
	for _, f := range frags2 {
		x.True(len(f.Pat.V) <= 2)
	}
}

func TestMineDeterministic(t *testing.T) {
	x := assert.New(t)
	run := func() []string {
		db := triangleDb(t, 6, 3)
		frags := mine(t, db, &config.Config{Support: 3, MinVertices: 1})
		labels := make([]string, 0, len(frags))
		for _, f := range frags {
			labels = append(labels, string(f.Label()))
		}
		return labels
	}
	x.Equal(run(), run(), "two runs must report the same patterns in the same order")
}

func TestMineEmptyDb(t *testing.T) {
	x := assert.New(t)
	db := &graph.Database{Graphs: nil, Labels: graph.NewLabels()}
	frags := mine(t, db, &config.Config{Support: 1, MinVertices: 1})
	x.Equal(0, len(frags))
}

func TestMineRingAware(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 6, 0)
	frags := mine(t, db, &config.Config{
		Support:     6,
		MinVertices: 1,
		RingAware:   true,
		RingMin:     3,
		RingMax:     8,
	})
	// fragments with unfinished rings are suppressed, only the closed
	// triangle remains
	x.Equal(1, len(frags))
	triangles := 0
	for _, f := range frags {
		x.Equal(0, f.Chains, "open ring chains may not be reported: %v", f)
		if len(f.Pat.E) == 3 {
			triangles++
			for i := range f.Pat.E {
				x.True(f.Pat.E[i].Ring, "triangle bonds are ring bonds")
			}
		}
	}
	x.Equal(1, triangles)
}

func TestMineRingAwareContainment(t *testing.T) {
	x := assert.New(t)
	labels := graph.NewLabels()
	e := labels.Color("e")
	ring := graph.NewGraph(3, 3)
	a := ring.AddVertex(labels.Color("A"))
	b := ring.AddVertex(labels.Color("A"))
	c := ring.AddVertex(labels.Color("A"))
	ring.AddEdge(a, b, e)
	ring.AddEdge(b, c, e)
	ring.AddEdge(a, c, e)
	ring.Id = 0
	chain := graph.NewGraph(3, 2)
	u := chain.AddVertex(labels.Color("A"))
	v := chain.AddVertex(labels.Color("A"))
	w := chain.AddVertex(labels.Color("A"))
	chain.AddEdge(u, v, e)
	chain.AddEdge(v, w, e)
	chain.Id = 1
	db := &graph.Database{Graphs: []*graph.Graph{ring, chain}, Labels: labels}
	frags := mine(t, db, &config.Config{
		Support:     1,
		MinVertices: 1,
		RingAware:   true,
		RingMin:     3,
		RingMax:     8,
	})
	x.True(len(frags) > 0)

	// every reported support must agree with the containment test: a chain
	// bond pattern holds only in the chain graph, a ring pattern only in
	// the ring graph
	for _, f := range frags {
		holds := 0
		for _, indices := range db.Indices {
			if f.Pat.Embedded(indices) {
				holds++
			}
		}
		x.Equal(f.Support(), holds, "containment disagrees with support: %v", f)
		x.Equal(1, f.Support(), "no pattern spans both hosts: %v", f)
	}
}

func TestFrequencyStore(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 6, 0)
	db.Prepare(0, 0)
	conf := &config.Config{Support: 6, MinVertices: 1}
	m, err := NewMiner(conf, db)
	x.Nil(err)
	defer m.Close()
	collector := &reporters.Collector{}
	x.Nil(m.Mine(collector))
	x.True(len(collector.Fragments) > 0)
	for _, f := range collector.Fragments {
		sup, found, err := m.Frequency(f.Label())
		x.Nil(err)
		x.True(found)
		x.Equal(int32(f.Support()), sup)
	}
}

func TestRightmostPath(t *testing.T) {
	x := assert.New(t)
	db := triangleDb(t, 1, 0)
	db.Prepare(0, 0)
	conf := &config.Config{Support: 1, MinVertices: 1}
	m, err := NewMiner(conf, db)
	x.Nil(err)
	defer m.Close()
	collector := &reporters.Collector{}
	x.Nil(m.Mine(collector))
	for _, f := range collector.Fragments {
		rmp := rightmostPath(f.Pat)
		x.Equal(0, rmp[0], "the path starts at the root")
		x.Equal(len(f.Pat.V)-1, rmp[len(rmp)-1], "and ends at the newest vertex")
	}
}
