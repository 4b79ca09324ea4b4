package miners

import ()

import (
	"github.com/TrustAGI-Lab/fragmine/lattice"
)

// Note: the miner's Close function should close any stores it opened; the
// reporter is closed by the caller.
type Miner interface {
	Mine(Reporter) error
	Close() error
}

type Reporter interface {
	Report(*lattice.Fragment) error
	Close() error
}
