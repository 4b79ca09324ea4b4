package subgraph

import (
	"sort"
)

// The canonizer searches every depth first construction of the pattern for
// the lexicographically minimal code word. Construction follows the
// rightmost path discipline: a ring closing (back) edge may only leave the
// current rightmost leaf toward one of its ancestors, in ascending target
// order, and a forward edge may only leave a rightmost path node. Scratch
// state lives here, never on the pattern, so abandoned branches need no
// cleanup beyond unplace.
type canonizer struct {
	sg     *SubGraph
	vperm  []int // pattern idx -> code position, -1 while unplaced
	vmap   []int // code position -> pattern idx
	eperm  []int // pattern edge idx -> code position, -1 while unplaced
	emap   []int // code position -> pattern edge idx
	parent []int // code position -> parent position over its forward edge
	code   []cent

	found     bool
	best      []cent
	bestVperm []int
	bestEmap  []int
	perms     [][]int // every vertex permutation spelling the best code
}

type cand struct {
	ent     cent
	eid     int
	forward bool
	vtx     int // pattern vertex a forward candidate adds
}

func (sg *SubGraph) canonize() *canonizer {
	c := &canonizer{
		sg:     sg,
		vperm:  make([]int, len(sg.V)),
		vmap:   make([]int, 0, len(sg.V)),
		eperm:  make([]int, len(sg.E)),
		emap:   make([]int, 0, len(sg.E)),
		parent: make([]int, 0, len(sg.V)),
		code:   make([]cent, 0, len(sg.E)),
	}
	for i := range c.vperm {
		c.vperm[i] = -1
	}
	for i := range c.eperm {
		c.eperm[i] = -1
	}
	if len(sg.V) == 0 {
		c.best = make([]cent, 0)
		c.bestVperm = make([]int, 0)
		c.bestEmap = make([]int, 0)
		return c
	}
	minColor := sg.V[0].Color
	for i := range sg.V {
		if sg.V[i].Color < minColor {
			minColor = sg.V[i].Color
		}
	}
	for i := range sg.V {
		if sg.V[i].Color != minColor {
			continue
		}
		c.vperm[i] = 0
		c.vmap = append(c.vmap, i)
		c.parent = append(c.parent, -1)
		c.search()
		c.vperm[i] = -1
		c.vmap = c.vmap[:0]
		c.parent = c.parent[:0]
	}
	return c
}

func (c *canonizer) search() {
	k := len(c.code)
	if c.found && c.prefixCmp() > 0 {
		return
	}
	if k == len(c.sg.E) {
		c.complete()
		return
	}
	cands := c.candidates()
	for i := range cands {
		c.place(&cands[i])
		c.search()
		c.unplace(&cands[i])
	}
}

// prefixCmp compares the current partial code against the best code over
// the prefix built so far.
func (c *canonizer) prefixCmp() int {
	for i := range c.code {
		if cmp := cmpEnt(&c.code[i], &c.best[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

func (c *canonizer) complete() {
	if c.found && c.prefixCmp() == 0 {
		c.perms = append(c.perms, append([]int(nil), c.vperm...))
		return
	}
	c.found = true
	c.best = append([]cent(nil), c.code...)
	c.bestVperm = append([]int(nil), c.vperm...)
	c.bestEmap = append([]int(nil), c.emap...)
	c.perms = c.perms[:0]
	c.perms = append(c.perms, append([]int(nil), c.vperm...))
}

func (c *canonizer) candidates() []cand {
	r := len(c.vmap) - 1
	rv := c.vmap[r]
	// once a vertex stops being the rightmost leaf its unplaced back edges
	// can never be placed, so the leaf's back edges are forced, smallest
	// target first
	lastBackTarg := -1
	if k := len(c.code); k > 0 && c.code[k-1].Src == r && c.code[k-1].Targ < r {
		lastBackTarg = c.code[k-1].Targ
	}
	var back *cand
	for _, eid := range c.sg.Adj[rv] {
		if c.eperm[eid] != -1 {
			continue
		}
		e := &c.sg.E[eid]
		o := e.Other(rv)
		j := c.vperm[o]
		if j == -1 || j == r {
			continue
		}
		if !c.onRightmostPath(j) {
			continue
		}
		if j <= lastBackTarg {
			continue
		}
		ent := cent{Targ: j, Src: r, Color: e.Color, TargColor: c.sg.V[o].Color, Ring: e.Ring}
		if back == nil || cmpEnt(&ent, &back.ent) < 0 {
			back = &cand{ent: ent, eid: eid}
		}
	}
	if back != nil {
		return []cand{*back}
	}
	cands := make([]cand, 0, 8)
	newPos := len(c.vmap)
	for p := r; p != -1; p = c.parent[p] {
		pv := c.vmap[p]
		for _, eid := range c.sg.Adj[pv] {
			if c.eperm[eid] != -1 {
				continue
			}
			e := &c.sg.E[eid]
			o := e.Other(pv)
			if c.vperm[o] != -1 {
				continue
			}
			cands = append(cands, cand{
				ent:     cent{Targ: newPos, Src: p, Color: e.Color, TargColor: c.sg.V[o].Color, Ring: e.Ring},
				eid:     eid,
				forward: true,
				vtx:     o,
			})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		return cmpEnt(&cands[i].ent, &cands[j].ent) < 0
	})
	return cands
}

func (c *canonizer) onRightmostPath(pos int) bool {
	for p := len(c.vmap) - 1; p != -1; p = c.parent[p] {
		if p == pos {
			return true
		}
	}
	return false
}

func (c *canonizer) place(cn *cand) {
	if cn.forward {
		c.vperm[cn.vtx] = len(c.vmap)
		c.vmap = append(c.vmap, cn.vtx)
		c.parent = append(c.parent, cn.ent.Src)
	}
	c.eperm[cn.eid] = len(c.code)
	c.emap = append(c.emap, cn.eid)
	c.code = append(c.code, cn.ent)
}

func (c *canonizer) unplace(cn *cand) {
	c.code = c.code[:len(c.code)-1]
	c.emap = c.emap[:len(c.emap)-1]
	c.eperm[cn.eid] = -1
	if cn.forward {
		c.vmap = c.vmap[:len(c.vmap)-1]
		c.parent = c.parent[:len(c.parent)-1]
		c.vperm[cn.vtx] = -1
	}
}

// orbits gives, for every position of the canonical arrangement, the
// largest position any structurally equivalent vertex takes across the
// automorphisms found during the search.
func (c *canonizer) orbits() []int {
	orb := make([]int, len(c.sg.V))
	vmap0 := make([]int, len(c.sg.V))
	for v, pos := range c.bestVperm {
		vmap0[pos] = v
	}
	for pos := range orb {
		orb[pos] = pos
	}
	for _, P := range c.perms {
		for pos := range orb {
			if p := P[vmap0[pos]]; p > orb[pos] {
				orb[pos] = p
			}
		}
	}
	return orb
}

func (c *canonizer) matchesOwn() bool {
	sg := c.sg
	if len(sg.V) == 0 {
		return true
	}
	if sg.V[0].Color != sg.V[c.vmap0()].Color {
		return false
	}
	return cmpEnts(sg.ownCode(), c.best) == 0
}

func (c *canonizer) vmap0() int {
	for v, pos := range c.bestVperm {
		if pos == 0 {
			return v
		}
	}
	return 0
}

// IsCanonic reports whether the pattern's own vertex/edge order already
// spells the minimal code word.
func (sg *SubGraph) IsCanonic() bool {
	return sg.canonize().matchesOwn()
}

// Canonize checks canonicity and computes the orbit markers of the
// canonical arrangement. When canonic is true the orbit slice indexes the
// pattern's own vertex order.
func (sg *SubGraph) Canonize() (canonic bool, orbits []int) {
	c := sg.canonize()
	return c.matchesOwn(), c.orbits()
}

// MakeCanonic rewrites the pattern into minimal code order. It returns the
// rewritten pattern together with the vertex permutation (old index to new)
// and edge permutation (old edge index to new), which callers use to remap
// embeddings. The receiver is unchanged.
func (sg *SubGraph) MakeCanonic() (csg *SubGraph, vperm []int, eperm []int) {
	c := sg.canonize()
	vperm = append([]int(nil), c.bestVperm...)
	eperm = make([]int, len(sg.E))
	V := make([]Vertex, len(sg.V))
	E := make([]Edge, len(sg.E))
	for v, pos := range vperm {
		V[pos] = Vertex{Idx: pos, Color: sg.V[v].Color}
	}
	for pos, ent := range c.best {
		old := c.bestEmap[pos]
		eperm[old] = pos
		E[pos] = Edge{Src: ent.Src, Targ: ent.Targ, Color: ent.Color, Ring: ent.Ring}
	}
	return assemble(V, E), vperm, eperm
}
