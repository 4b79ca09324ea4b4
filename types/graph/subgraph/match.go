package subgraph

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/TrustAGI-Lab/fragmine/types/graph"
)

// IdNode is one partial vertex assignment in the embedding search, a
// linked list so sibling branches share their common prefix.
type IdNode struct {
	Id, Idx int
	Prev    *IdNode
}

func (ids *IdNode) lookup(idx int) int {
	for c := ids; c != nil; c = c.Prev {
		if c.Idx == idx {
			return c.Id
		}
	}
	return -1
}

func (ids *IdNode) hasId(id int) bool {
	for c := ids; c != nil; c = c.Prev {
		if c.Id == id {
			return true
		}
	}
	return false
}

func (ids *IdNode) list(length int) []int {
	l := make([]int, length)
	for i := range l {
		l[i] = -1
	}
	for c := ids; c != nil; c = c.Prev {
		l[c.Idx] = c.Id
	}
	return l
}

// EmbIterator yields embeddings one at a time so callers can stop early.
type EmbIterator func() (*Embedding, EmbIterator)

// searchStart picks the pattern vertex with the globally rarest color, the
// cheapest place to anchor the search.
func (sg *SubGraph) searchStart(indices *graph.Indices) int {
	minFreq := -1
	minIdx := -1
	for i := range sg.V {
		f := indices.ColorFrequency(sg.V[i].Color)
		if minIdx == -1 || f < minFreq {
			minFreq = f
			minIdx = i
		}
	}
	return minIdx
}

// edgeChain orders the pattern edges as a depth first search from startIdx,
// so each edge in the chain has at least one endpoint already mapped when
// the search reaches it.
func (sg *SubGraph) edgeChain(startIdx int) []int {
	edges := make([]int, 0, len(sg.E))
	added := make([]bool, len(sg.E))
	seen := make([]bool, len(sg.V))
	var visit func(int)
	visit = func(u int) {
		seen[u] = true
		for _, eid := range sg.Adj[u] {
			if !added[eid] {
				added[eid] = true
				edges = append(edges, eid)
			}
		}
		for _, eid := range sg.Adj[u] {
			v := sg.E[eid].Other(u)
			if !seen[v] {
				visit(v)
			}
		}
	}
	visit(startIdx)
	return edges
}

// IterEmbeddings drives a stack based search for embeddings of sg in the
// prepared host graph. Gidx tags the produced embeddings.
func (sg *SubGraph) IterEmbeddings(indices *graph.Indices, gidx int) EmbIterator {
	if len(sg.V) == 0 {
		return func() (*Embedding, EmbIterator) { return nil, nil }
	}
	type entry struct {
		ids *IdNode
		eid int
	}
	startIdx := sg.searchStart(indices)
	chain := sg.edgeChain(startIdx)
	stack := make([]entry, 0, 64)
	for _, id := range indices.ColorIndex[sg.V[startIdx].Color] {
		stack = append(stack, entry{&IdNode{Id: id, Idx: startIdx}, 0})
	}
	var ei EmbIterator
	ei = func() (*Embedding, EmbIterator) {
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if i.eid >= len(chain) {
				return sg.buildEmbedding(indices, gidx, i.ids), ei
			}
			sg.extendEmbedding(indices, i.ids, &sg.E[chain[i.eid]], func(ext *IdNode) {
				stack = append(stack, entry{ext, i.eid + 1})
			})
		}
		return nil, nil
	}
	return ei
}

func (sg *SubGraph) buildEmbedding(indices *graph.Indices, gidx int, ids *IdNode) *Embedding {
	emb := &Embedding{
		SG:   sg,
		Gidx: gidx,
		Ids:  ids.list(len(sg.V)),
		EIds: make([]int, len(sg.E)),
	}
	for i := range sg.E {
		e := &sg.E[i]
		emb.EIds[i] = indices.EdgeId(emb.Ids[e.Src], emb.Ids[e.Targ], e.Color)
	}
	return emb
}

func (sg *SubGraph) extendEmbedding(indices *graph.Indices, ids *IdNode, e *Edge, do func(*IdNode)) {
	src := ids.lookup(e.Src)
	targ := ids.lookup(e.Targ)
	switch {
	case src != -1 && targ != -1:
		if indices.EdgeMatches(src, targ, e.Color, e.Ring) {
			do(ids)
		}
	case src != -1:
		for _, id := range indices.NeighborIndex[graph.IdColorColor{Id: src, EdgeColor: e.Color, VertexColor: sg.V[e.Targ].Color}] {
			if !ids.hasId(id) && indices.EdgeMatches(src, id, e.Color, e.Ring) {
				do(&IdNode{Id: id, Idx: e.Targ, Prev: ids})
			}
		}
	case targ != -1:
		for _, id := range indices.NeighborIndex[graph.IdColorColor{Id: targ, EdgeColor: e.Color, VertexColor: sg.V[e.Src].Color}] {
			if !ids.hasId(id) && indices.EdgeMatches(targ, id, e.Color, e.Ring) {
				do(&IdNode{Id: id, Idx: e.Src, Prev: ids})
			}
		}
	default:
		errors.Logf("ERROR", "disconnected edge chain at %v in %v", e, sg)
	}
}

// Embedded reports whether at least one embedding of sg exists in the
// prepared host. This is the containment test feature extraction uses.
// Ring marks participate in the match: a chain bond pattern edge does not
// match a ring marked host edge, so containment agrees with the support a
// ring aware mining run reports.
func (sg *SubGraph) Embedded(indices *graph.Indices) bool {
	return sg.Embed(indices, -1) != nil
}

// Embed finds one witness embedding, or nil.
func (sg *SubGraph) Embed(indices *graph.Indices, gidx int) *Embedding {
	emb, _ := sg.IterEmbeddings(indices, gidx)()
	return emb
}

// Embeddings enumerates every distinct embedding of sg in the host.
func (sg *SubGraph) Embeddings(indices *graph.Indices, gidx int) []*Embedding {
	seen := hashtable.NewLinearHash()
	embs := make([]*Embedding, 0, 10)
	for emb, ei := sg.IterEmbeddings(indices, gidx)(); ei != nil; emb, ei = ei() {
		label := types.ByteSlice(emb.Serialize())
		if seen.Has(label) {
			continue
		}
		seen.Put(label, nil)
		embs = append(embs, emb)
	}
	return embs
}

// EmbeddingCount counts distinct embeddings, the basis of term frequency
// style feature weights.
func (sg *SubGraph) EmbeddingCount(indices *graph.Indices) int {
	return len(sg.Embeddings(indices, -1))
}
