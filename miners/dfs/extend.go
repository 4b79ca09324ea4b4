package dfs

import ()

import (
	"github.com/TrustAGI-Lab/fragmine/types/graph/subgraph"
)

// rightmostPath lists the code positions from the root down to the
// rightmost leaf. Position p's parent on the path is the source of the
// forward edge that created p; the leaf is the last created vertex.
func rightmostPath(pat *subgraph.SubGraph) []int {
	if len(pat.V) == 0 {
		return nil
	}
	parent := make([]int, len(pat.V))
	for i := range parent {
		parent[i] = -1
	}
	for i := range pat.E {
		e := &pat.E[i]
		if e.Targ > e.Src {
			if parent[e.Targ] == -1 {
				parent[e.Targ] = e.Src
			}
		}
	}
	path := make([]int, 0, len(pat.V))
	for p := len(pat.V) - 1; p != -1; p = parent[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// lastBackTarg gives the target of the newest ring closing edge leaving
// the rightmost leaf, or -1. Ring closing edges from the leaf must be
// placed immediately and in ascending target order, so a further one may
// only target a later ancestor.
func lastBackTarg(pat *subgraph.SubGraph) int {
	k := len(pat.E)
	if k == 0 {
		return -1
	}
	leaf := len(pat.V) - 1
	e := &pat.E[k-1]
	if e.Src == leaf && e.Targ < leaf {
		return e.Targ
	}
	return -1
}

// lastForward finds the newest forward edge leaving position p. A later
// forward extension from p must compare at least equal on (edge color,
// target color) or the grown code cannot be minimal.
func lastForward(pat *subgraph.SubGraph) (src, color, targColor int, ok bool) {
	for i := len(pat.E) - 1; i >= 0; i-- {
		e := &pat.E[i]
		if e.Targ > e.Src {
			return e.Src, e.Color, pat.V[e.Targ].Color, true
		}
	}
	return 0, 0, 0, false
}

// forwardAllowed applies the minimality floor from lastForward to a
// candidate forward extension leaving position p.
func forwardAllowed(pat *subgraph.SubGraph, p, color, targColor int) bool {
	src, lc, ltc, ok := lastForward(pat)
	if !ok || p != src {
		return true
	}
	if color != lc {
		return color > lc
	}
	return targColor >= ltc
}

// openChains counts pattern vertices that sit on an unfinished ring: they
// touch exactly one ring marked edge, so the ring they belong to is not
// closed inside the pattern.
func openChains(pat *subgraph.SubGraph) int {
	count := 0
	for i := range pat.V {
		rings := 0
		for _, eid := range pat.Adj[i] {
			if pat.E[eid].Ring {
				rings++
			}
		}
		if rings == 1 {
			count++
		}
	}
	return count
}
