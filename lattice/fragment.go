package lattice

import (
	"bytes"
	"fmt"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/TrustAGI-Lab/fragmine/types/graph"
	"github.com/TrustAGI-Lab/fragmine/types/graph/subgraph"
)

// Fragment is a discovered pattern together with everything the miner
// learned about it: the parent it was grown from, the extension that grew
// it, and the embeddings found in the database. Embs holds one head
// embedding per host graph, in ascending graph order; further embeddings
// in the same graph hang off the head's Next pointer. Support is therefore
// len(Embs), the number of distinct graphs containing the pattern.
type Fragment struct {
	Parent *Fragment
	Ext    *subgraph.Extension
	Pat    *subgraph.SubGraph
	Embs   []*subgraph.Embedding
	Chains int
	count  int
}

func NewFragment(parent *Fragment, ext *subgraph.Extension, pat *subgraph.SubGraph) *Fragment {
	return &Fragment{
		Parent: parent,
		Ext:    ext,
		Pat:    pat,
		Embs:   make([]*subgraph.Embedding, 0, 10),
	}
}

// AddEmbedding attaches an embedding to the fragment. Embeddings must be
// added in non-decreasing graph order; within a graph they chain onto the
// head.
func (f *Fragment) AddEmbedding(emb *subgraph.Embedding) {
	f.count++
	if len(f.Embs) > 0 && f.Embs[len(f.Embs)-1].Gidx == emb.Gidx {
		head := f.Embs[len(f.Embs)-1]
		emb.Next = head.Next
		head.Next = emb
		return
	}
	f.Embs = append(f.Embs, emb)
}

// Support is the number of distinct host graphs with at least one
// embedding.
func (f *Fragment) Support() int {
	return len(f.Embs)
}

// EmbeddingCount is the total number of embeddings across all graphs.
func (f *Fragment) EmbeddingCount() int {
	return f.count
}

func (f *Fragment) Label() []byte {
	return f.Pat.Label()
}

// Level is the size of the pattern, counted in edges (vertices for a
// single vertex pattern).
func (f *Fragment) Level() int {
	if len(f.Pat.E) == 0 {
		return len(f.Pat.V)
	}
	return len(f.Pat.E)
}

// Verify recounts the fragment's support from its embedding chains and
// checks every chained embedding against the database. It errors if the
// chains disagree with the recorded support or any embedding does not
// exist in its host graph.
func (f *Fragment) Verify(db *graph.Database) error {
	graphs := 0
	total := 0
	for _, head := range f.Embs {
		graphs++
		for emb := head; emb != nil; emb = emb.Next {
			total++
			if emb.Gidx < 0 || emb.Gidx >= len(db.Indices) {
				return errors.Errorf("embedding %v of %v names unknown graph %d", emb, f, emb.Gidx)
			}
			if !emb.Exists(db.Indices[emb.Gidx]) {
				return errors.Errorf("embedding %v of %v does not exist in graph %d", emb, f, emb.Gidx)
			}
		}
	}
	if graphs != f.Support() {
		return errors.Errorf("fragment %v support %d but embeddings cover %d graphs", f, f.Support(), graphs)
	}
	if total != f.count {
		return errors.Errorf("fragment %v recorded %d embeddings but chains hold %d", f, f.count, total)
	}
	return nil
}

func (f *Fragment) String() string {
	return fmt.Sprintf("<Fragment %v support=%d embs=%d>", f.Pat, f.Support(), f.count)
}

// Pretty renders the pattern with its original labels.
func (f *Fragment) Pretty(db *graph.Database) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "support: %d, embeddings: %d\n", f.Support(), f.count)
	fmt.Fprint(buf, f.Pat.Pretty(db))
	return buf.String()
}
