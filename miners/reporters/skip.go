package reporters

import ()

import (
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/miners"
)

type Skip struct {
	Skip     int
	Reporter miners.Reporter
	count    int
}

func NewSkip(n int, rptr miners.Reporter) *Skip {
	return &Skip{
		Skip:     n,
		Reporter: rptr,
	}
}

func (r *Skip) Report(f *lattice.Fragment) error {
	r.count++
	if r.count%r.Skip == 0 {
		return r.Reporter.Report(f)
	}
	return nil
}

func (r *Skip) Close() error {
	return r.Reporter.Close()
}
