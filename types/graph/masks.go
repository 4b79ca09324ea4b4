package graph

// Masks coarsen raw type codes by bit masking so graphs typed under a rich
// scheme (chemical element plus charge and bond detail in the low bits) can
// be compared with graphs typed under a generic scheme. A mask of -1 keeps
// every bit.
type Masks struct {
	Vertex int
	Edge   int
}

// GenericMasks keeps the full type codes; dictionary colors from the
// loaders carry no sub-fields to strip.
var GenericMasks = Masks{Vertex: -1, Edge: -1}

// ChemicalMasks keeps the element number of a vertex type (low 7 bits) and
// the bond order of an edge type (low 2 bits), dropping charge and
// aromaticity annotations.
var ChemicalMasks = Masks{Vertex: 0x7f, Edge: 0x3}

// MaskTypes applies m to every color of g in place. Raw colors are saved on
// first use so Decode restores them.
func (g *Graph) MaskTypes(m Masks) {
	if m.Vertex == -1 && m.Edge == -1 {
		return
	}
	g.saveRaw()
	if m.Vertex != -1 {
		for i := range g.V {
			g.V[i].Color &= m.Vertex
		}
	}
	if m.Edge != -1 {
		for i := range g.E {
			g.E[i].Color &= m.Edge
		}
	}
}
