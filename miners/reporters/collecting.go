package reporters

import ()

import (
	"github.com/TrustAGI-Lab/fragmine/lattice"
)

type Collector struct {
	Fragments []*lattice.Fragment
}

func (c *Collector) Report(f *lattice.Fragment) error {
	c.Fragments = append(c.Fragments, f)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
