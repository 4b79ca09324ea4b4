package subgraph

import (
	"fmt"
)

// An Extension is one incremental growth step of a pattern: a new edge from
// pattern index Src to pattern index Targ. Targ == len(pattern.V) adds a
// fresh vertex of TargColor; a smaller Targ closes a ring. Two extensions
// of the same parent with Compare == 0 denote the same child fragment.
type Extension struct {
	Src, Targ int
	Color     int
	TargColor int
	Ring      bool
}

// Compare follows the fragment comparison order: destination index, source
// index (descending), edge color, destination color, then the ring flag.
func (ext *Extension) Compare(o *Extension) int {
	if ext.Targ != o.Targ {
		if ext.Targ < o.Targ {
			return -1
		}
		return 1
	}
	if ext.Src != o.Src {
		if ext.Src > o.Src {
			return -1
		}
		return 1
	}
	if ext.Color != o.Color {
		if ext.Color < o.Color {
			return -1
		}
		return 1
	}
	if ext.TargColor != o.TargColor {
		if ext.TargColor < o.TargColor {
			return -1
		}
		return 1
	}
	if ext.Ring != o.Ring {
		if !ext.Ring {
			return -1
		}
		return 1
	}
	return 0
}

func (ext *Extension) String() string {
	return fmt.Sprintf("<ext %v--%v:%v/%v ring=%v>", ext.Src, ext.Targ, ext.Color, ext.TargColor, ext.Ring)
}
