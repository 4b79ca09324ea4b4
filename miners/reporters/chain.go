package reporters

import ()

import (
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/miners"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(f *lattice.Fragment) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(f)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
