package dfs

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/TrustAGI-Lab/fragmine/config"
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/miners"
	"github.com/TrustAGI-Lab/fragmine/stores/bytes_int"
	"github.com/TrustAGI-Lab/fragmine/types/graph"
	"github.com/TrustAGI-Lab/fragmine/types/graph/subgraph"
)

// Miner runs the depth first search over the fragment lattice. Fragments
// grow one edge at a time along the rightmost path of their code word;
// a grown fragment survives only if its code is canonical and its support
// clears the threshold, which together give each frequent pattern exactly
// one visit.
type Miner struct {
	Config    *config.Config
	Db        *graph.Database
	frequency bytes_int.MultiMap
	seen      *hashtable.LinearHash
	reporter  miners.Reporter
}

func NewMiner(c *config.Config, db *graph.Database) (*Miner, error) {
	frequency, err := c.BytesIntMultiMap("fragment-frequency")
	if err != nil {
		return nil, err
	}
	m := &Miner{
		Config:    c,
		Db:        db,
		frequency: frequency,
		seen:      hashtable.NewLinearHash(),
	}
	return m, nil
}

func (m *Miner) Close() error {
	if m.frequency == nil {
		return nil
	}
	err := m.frequency.Delete()
	m.frequency = nil
	return err
}

// Frequency reads back the recorded support of an emitted pattern label.
func (m *Miner) Frequency(label []byte) (int32, bool, error) {
	var found bool
	var sup int32
	err := bytes_int.Do(func() (bytes_int.Iterator, error) {
		return m.frequency.Find(label)
	}, func(key []byte, value int32) error {
		found = true
		sup = value
		return nil
	})
	return sup, found, err
}

// Mine runs the search, reporting every frequent fragment between the
// configured size bounds. Reporting order is deterministic for a given
// database and configuration.
func (m *Miner) Mine(reporter miners.Reporter) error {
	m.reporter = reporter
	roots, err := m.roots()
	if err != nil {
		return err
	}
	errors.Logf("INFO", "mining from %v frequent root colors, support >= %v", len(roots), m.Config.Support)
	for _, root := range roots {
		err := m.mine(root, []int{0})
		if err != nil {
			return err
		}
	}
	return nil
}

// roots builds one fragment per vertex color frequent enough to matter.
func (m *Miner) roots() ([]*lattice.Fragment, error) {
	maxColor := -1
	for _, indices := range m.Db.Indices {
		for color := range indices.ColorIndex {
			if color > maxColor {
				maxColor = color
			}
		}
	}
	roots := make([]*lattice.Fragment, 0, maxColor+1)
	for color := 0; color <= maxColor; color++ {
		sup := 0
		for _, indices := range m.Db.Indices {
			if len(indices.ColorIndex[color]) > 0 {
				sup++
			}
		}
		if sup < m.Config.Support {
			continue
		}
		pat := subgraph.FromVertex(color)
		f := lattice.NewFragment(nil, nil, pat)
		for gidx, indices := range m.Db.Indices {
			for _, id := range indices.ColorIndex[color] {
				f.AddEmbedding(&subgraph.Embedding{
					SG:   pat,
					Gidx: gidx,
					Ids:  []int{id},
					EIds: []int{},
				})
			}
		}
		roots = append(roots, f)
	}
	return roots, nil
}

// mine emits f if it qualifies and recurses into its surviving children.
// orbits comes from the canonical search of f's own pattern.
func (m *Miner) mine(f *lattice.Fragment, orbits []int) error {
	err := m.emit(f)
	if err != nil {
		return err
	}
	exts := m.extensions(f, orbits)
	keys := make([]subgraph.Extension, 0, len(exts))
	for ext := range exts {
		keys = append(keys, ext)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Compare(&keys[j]) < 0
	})
	for i := range keys {
		ext := keys[i]
		child, childOrbits, err := m.grow(f, &ext, exts[ext])
		if err != nil {
			return err
		}
		if child == nil {
			continue
		}
		err = m.mine(child, childOrbits)
		if err != nil {
			return err
		}
	}
	return nil
}

// emit reports a fragment inside the size bounds. Edgeless fragments are
// grown through but never reported. Every emission first re-verifies the
// embedding chains against the database; a mismatch is a miner bug and
// aborts the run. In ring aware mode fragments with unfinished rings are
// likewise grown through without being reported.
func (m *Miner) emit(f *lattice.Fragment) error {
	if len(f.Pat.E) == 0 {
		return nil
	}
	if len(f.Pat.V) < m.Config.MinVertices {
		return nil
	}
	if m.Config.RingAware {
		f.Chains = openChains(f.Pat)
		if f.Chains > 0 {
			return nil
		}
	}
	err := f.Verify(m.Db)
	if err != nil {
		return err
	}
	err = m.frequency.Add(f.Label(), int32(f.Support()))
	if err != nil {
		return err
	}
	return m.reporter.Report(f)
}

// extCollect accumulates, per extension, the parent embeddings it grows
// and the host vertex and edge realizing it. Parent embeddings are walked
// in graph order, so each list stays in graph order too.
type extCollect struct {
	emb   *subgraph.Embedding
	newId int
	eid   int
}

func (m *Miner) extensions(f *lattice.Fragment, orbits []int) map[subgraph.Extension][]extCollect {
	pat := f.Pat
	rmp := rightmostPath(pat)
	leaf := len(pat.V) - 1
	lbt := lastBackTarg(pat)
	growable := m.Config.MaxVertices <= 0 || len(pat.V) < m.Config.MaxVertices
	exts := make(map[subgraph.Extension][]extCollect)
	for _, head := range f.Embs {
		indices := m.Db.Indices[head.Gidx]
		for emb := head; emb != nil; emb = emb.Next {
			if growable {
				m.forwardExts(pat, rmp, orbits, indices, emb, exts)
			}
			m.backExts(pat, rmp, leaf, lbt, indices, emb, exts)
		}
	}
	return exts
}

func (m *Miner) forwardExts(pat *subgraph.SubGraph, rmp, orbits []int, indices *graph.Indices, emb *subgraph.Embedding, exts map[subgraph.Extension][]extCollect) {
	for _, p := range rmp {
		// a structurally equivalent vertex later in the arrangement
		// spawns the same children, skip this position
		if orbits[p] > p {
			continue
		}
		hid := emb.Ids[p]
		for _, eid := range indices.G.Adj[hid] {
			e := &indices.G.E[eid]
			other := e.Other(hid)
			if mapped(emb.Ids, other) {
				continue
			}
			targColor := indices.G.V[other].Color
			if !forwardAllowed(pat, p, e.Color, targColor) {
				continue
			}
			ext := subgraph.Extension{
				Src:       p,
				Targ:      len(pat.V),
				Color:     e.Color,
				TargColor: targColor,
				Ring:      m.Config.RingAware && e.InRing(),
			}
			exts[ext] = append(exts[ext], extCollect{emb: emb, newId: other, eid: eid})
		}
	}
}

func (m *Miner) backExts(pat *subgraph.SubGraph, rmp []int, leaf, lbt int, indices *graph.Indices, emb *subgraph.Embedding, exts map[subgraph.Extension][]extCollect) {
	a := emb.Ids[leaf]
	for _, j := range rmp {
		if j >= leaf || j <= lbt {
			continue
		}
		b := emb.Ids[j]
		for _, eid := range indices.G.Adj[a] {
			e := &indices.G.E[eid]
			if e.Other(a) != b {
				continue
			}
			if pat.HasEdge(leaf, j, e.Color) {
				continue
			}
			ext := subgraph.Extension{
				Src:       leaf,
				Targ:      j,
				Color:     e.Color,
				TargColor: pat.V[j].Color,
				Ring:      m.Config.RingAware && e.InRing(),
			}
			exts[ext] = append(exts[ext], extCollect{emb: emb, newId: -1, eid: eid})
		}
	}
}

func mapped(ids []int, id int) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// grow materializes the child fragment for ext. It returns nil when the
// child's code is not canonical (another construction owns the pattern)
// or its support falls below the threshold.
func (m *Miner) grow(f *lattice.Fragment, ext *subgraph.Extension, collected []extCollect) (*lattice.Fragment, []int, error) {
	csg, err := f.Pat.Extend(ext)
	if err != nil {
		return nil, nil, err
	}
	canonic, orbits := csg.Canonize()
	if !canonic {
		return nil, nil, nil
	}
	child := lattice.NewFragment(f, ext, csg)
	for _, c := range collected {
		child.AddEmbedding(extendEmbedding(csg, c.emb, c.newId, c.eid))
	}
	if child.Support() < m.Config.Support {
		return nil, nil, nil
	}
	label := types.ByteSlice(child.Label())
	if m.seen.Has(label) {
		// a second canonical construction of the same code word means the
		// canonizer or the orbit pruning is wrong
		return nil, nil, errors.Errorf("pattern visited twice: %v", csg)
	}
	m.seen.Put(label, nil)
	return child, orbits, nil
}

func extendEmbedding(csg *subgraph.SubGraph, emb *subgraph.Embedding, newId, eid int) *subgraph.Embedding {
	ids := make([]int, len(emb.Ids), len(emb.Ids)+1)
	eids := make([]int, len(emb.EIds), len(emb.EIds)+1)
	copy(ids, emb.Ids)
	copy(eids, emb.EIds)
	if newId != -1 {
		ids = append(ids, newId)
	}
	eids = append(eids, eid)
	return &subgraph.Embedding{SG: csg, Gidx: emb.Gidx, Ids: ids, EIds: eids}
}
