package subgraph

import (
	"encoding/binary"
	"fmt"
	"strings"
)

import (
	"github.com/TrustAGI-Lab/fragmine/types/graph"
)

// An Embedding is one concrete occurrence of a pattern in a host graph:
// Ids maps pattern vertex index to host vertex id and EIds maps pattern
// edge index to host edge id. Next chains every further embedding of the
// same fragment inside the same host graph, so all occurrences in one
// graph can be walked without rescanning.
type Embedding struct {
	SG   *SubGraph
	Gidx int
	Ids  []int
	EIds []int
	Next *Embedding
}

// Exists verifies the mapping against the host: every pattern edge must
// connect the mapped endpoints with the right color and ring marking.
func (emb *Embedding) Exists(indices *graph.Indices) bool {
	seen := make(map[int]bool, len(emb.Ids))
	for _, id := range emb.Ids {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	for i := range emb.SG.E {
		e := &emb.SG.E[i]
		if !indices.EdgeMatches(emb.Ids[e.Src], emb.Ids[e.Targ], e.Color, e.Ring) {
			return false
		}
	}
	return true
}

// ChainLength walks the Next chain, counting this embedding and its
// siblings.
func (emb *Embedding) ChainLength() int {
	n := 0
	for e := emb; e != nil; e = e.Next {
		n++
	}
	return n
}

// Translate remaps the embedding onto a rewritten pattern using the
// permutations MakeCanonic returned.
func (emb *Embedding) Translate(csg *SubGraph, vperm, eperm []int) *Embedding {
	ids := make([]int, len(emb.Ids))
	eids := make([]int, len(emb.EIds))
	for i, id := range emb.Ids {
		ids[vperm[i]] = id
	}
	for i, eid := range emb.EIds {
		eids[eperm[i]] = eid
	}
	return &Embedding{SG: csg, Gidx: emb.Gidx, Ids: ids, EIds: eids}
}

// Serialize encodes the host graph index and vertex mapping; equal bytes
// mean the same occurrence.
func (emb *Embedding) Serialize() []byte {
	bytes := make([]byte, 4+len(emb.Ids)*4)
	binary.BigEndian.PutUint32(bytes[0:4], uint32(emb.Gidx))
	for i, id := range emb.Ids {
		s := 4 + i*4
		binary.BigEndian.PutUint32(bytes[s:s+4], uint32(id))
	}
	return bytes
}

func (emb *Embedding) String() string {
	V := make([]string, 0, len(emb.Ids))
	for i, id := range emb.Ids {
		V = append(V, fmt.Sprintf("(%v->%v)", i, id))
	}
	return fmt.Sprintf("<emb g%v %v>", emb.Gidx, strings.Join(V, ""))
}
