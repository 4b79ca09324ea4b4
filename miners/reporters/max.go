package reporters

import (
	"sort"
)

import (
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/miners"
)

// Top keeps the K best fragments by Score and forwards them to the wrapped
// reporter on Close. Ties keep the fragment discovered first, so with a
// deterministic miner the selection is deterministic too.
type Top struct {
	K        int
	Score    func(*lattice.Fragment) float64
	Reporter miners.Reporter
	entries  []topEntry
}

type topEntry struct {
	frag  *lattice.Fragment
	score float64
	ord   int
}

// SupportScore ranks fragments by support, then by size in edges.
func SupportScore(f *lattice.Fragment) float64 {
	return float64(f.Support())*1000 + float64(f.Level())
}

func NewTop(k int, score func(*lattice.Fragment) float64, reporter miners.Reporter) *Top {
	if score == nil {
		score = SupportScore
	}
	return &Top{
		K:        k,
		Score:    score,
		Reporter: reporter,
	}
}

func (r *Top) Report(f *lattice.Fragment) error {
	r.entries = append(r.entries, topEntry{
		frag:  f,
		score: r.Score(f),
		ord:   len(r.entries),
	})
	return nil
}

func (r *Top) Close() error {
	sort.SliceStable(r.entries, func(i, j int) bool {
		if r.entries[i].score != r.entries[j].score {
			return r.entries[i].score > r.entries[j].score
		}
		return r.entries[i].ord < r.entries[j].ord
	})
	k := r.K
	if k <= 0 || k > len(r.entries) {
		k = len(r.entries)
	}
	for _, e := range r.entries[:k] {
		err := r.Reporter.Report(e.frag)
		if err != nil {
			return err
		}
	}
	return r.Reporter.Close()
}
