package subgraph

// cent is one code word entry. The total order over code words compares the
// root color, then entries left to right with field precedence: destination
// index ascending, source index descending, edge color ascending,
// destination color ascending, and the ring flag last.
type cent struct {
	Targ, Src, Color, TargColor int
	Ring                        bool
}

func cmpEnt(a, b *cent) int {
	if a.Targ != b.Targ {
		if a.Targ < b.Targ {
			return -1
		}
		return 1
	}
	if a.Src != b.Src {
		if a.Src > b.Src {
			return -1
		}
		return 1
	}
	if a.Color != b.Color {
		if a.Color < b.Color {
			return -1
		}
		return 1
	}
	if a.TargColor != b.TargColor {
		if a.TargColor < b.TargColor {
			return -1
		}
		return 1
	}
	if a.Ring != b.Ring {
		if !a.Ring {
			return -1
		}
		return 1
	}
	return 0
}

func cmpEnts(a, b []cent) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := cmpEnt(&a[i], &b[i]); c != 0 {
			return c
		}
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return 0
}

// ownCode reads the code word the pattern's current vertex/edge order
// spells.
func (sg *SubGraph) ownCode() []cent {
	code := make([]cent, len(sg.E))
	for i := range sg.E {
		e := &sg.E[i]
		code[i] = cent{
			Targ:      e.Targ,
			Src:       e.Src,
			Color:     e.Color,
			TargColor: sg.V[e.Targ].Color,
			Ring:      e.Ring,
		}
	}
	return code
}

// CompareCode orders patterns by their code words: root color first, then
// the entry sequence.
func CompareCode(a, b *SubGraph) int {
	if len(a.V) == 0 || len(b.V) == 0 {
		if len(a.V) != len(b.V) {
			if len(a.V) < len(b.V) {
				return -1
			}
			return 1
		}
		return 0
	}
	if a.V[0].Color != b.V[0].Color {
		if a.V[0].Color < b.V[0].Color {
			return -1
		}
		return 1
	}
	return cmpEnts(a.ownCode(), b.ownCode())
}
