package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/miners"
	"github.com/TrustAGI-Lab/fragmine/types/graph/subgraph"
)

// fragment builds a single vertex fragment of the given color with one
// embedding per listed graph index.
func fragment(color int, gidxs ...int) *lattice.Fragment {
	pat := subgraph.FromVertex(color)
	f := lattice.NewFragment(nil, nil, pat)
	for _, gidx := range gidxs {
		f.AddEmbedding(&subgraph.Embedding{SG: pat, Gidx: gidx, Ids: []int{0}, EIds: []int{}})
	}
	return f
}

func TestChain(t *testing.T) {
	x := assert.New(t)
	a := &Collector{}
	b := &Collector{}
	c := &Chain{Reporters: []miners.Reporter{a, b}}
	x.Nil(c.Report(fragment(0, 0)))
	x.Nil(c.Report(fragment(1, 0)))
	x.Nil(c.Close())
	x.Equal(2, len(a.Fragments))
	x.Equal(2, len(b.Fragments))
}

func TestUnique(t *testing.T) {
	x := assert.New(t)
	inner := &Collector{}
	u := NewUnique(inner)
	f := fragment(0, 0)
	x.Nil(u.Report(f))
	x.Nil(u.Report(f))
	x.Nil(u.Report(fragment(1, 0)))
	x.Nil(u.Close())
	x.Equal(2, len(inner.Fragments), "repeated labels pass once")
}

func TestSkip(t *testing.T) {
	x := assert.New(t)
	inner := &Collector{}
	s := NewSkip(2, inner)
	for i := 0; i < 5; i++ {
		x.Nil(s.Report(fragment(i, 0)))
	}
	x.Nil(s.Close())
	x.Equal(2, len(inner.Fragments))
}

func TestTop(t *testing.T) {
	x := assert.New(t)
	inner := &Collector{}
	top := NewTop(2, nil, inner)
	x.Nil(top.Report(fragment(0, 0)))
	x.Nil(top.Report(fragment(1, 0, 1, 2)))
	x.Nil(top.Report(fragment(2, 0, 1)))
	x.Equal(0, len(inner.Fragments), "top holds everything until close")
	x.Nil(top.Close())
	x.Equal(2, len(inner.Fragments))
	x.Equal(3, inner.Fragments[0].Support())
	x.Equal(2, inner.Fragments[1].Support())
}

func TestTopTiesKeepDiscoveryOrder(t *testing.T) {
	x := assert.New(t)
	inner := &Collector{}
	top := NewTop(1, nil, inner)
	first := fragment(0, 0)
	second := fragment(1, 0)
	x.Nil(top.Report(first))
	x.Nil(top.Report(second))
	x.Nil(top.Close())
	x.Equal(1, len(inner.Fragments))
	x.True(inner.Fragments[0] == first, "equal scores keep the earlier fragment")
}
