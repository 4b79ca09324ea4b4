package graph

import (
	"sort"
)

// A Coder re-maps vertex and edge colors into frequency rank order across a
// whole database. Rank encoded colors make code words comparable between
// graphs whose raw type numbering differs; Graph.Decode undoes the
// encoding.
type Coder struct {
	venc map[int]int
	eenc map[int]int
	vdec []int
	edec []int
}

// NewCoder counts color frequencies over graphs and assigns rank 0 to the
// most frequent color. Ties break on the raw code so encoding is
// deterministic.
func NewCoder(graphs []*Graph) *Coder {
	vfreq := make(map[int]int)
	efreq := make(map[int]int)
	for _, g := range graphs {
		for i := range g.V {
			vfreq[g.V[i].Color]++
		}
		for i := range g.E {
			efreq[g.E[i].Color]++
		}
	}
	c := &Coder{
		venc: make(map[int]int, len(vfreq)),
		eenc: make(map[int]int, len(efreq)),
	}
	c.vdec = rank(vfreq, c.venc)
	c.edec = rank(efreq, c.eenc)
	return c
}

func rank(freq map[int]int, enc map[int]int) (dec []int) {
	colors := make([]int, 0, len(freq))
	for color := range freq {
		colors = append(colors, color)
	}
	sort.Slice(colors, func(i, j int) bool {
		if freq[colors[i]] != freq[colors[j]] {
			return freq[colors[i]] > freq[colors[j]]
		}
		return colors[i] < colors[j]
	})
	dec = make([]int, len(colors))
	for r, color := range colors {
		enc[color] = r
		dec[r] = color
	}
	return dec
}

// Encode rewrites g's colors in place. The raw colors are saved so Decode
// can restore them.
func (c *Coder) Encode(g *Graph) {
	g.saveRaw()
	for i := range g.V {
		g.V[i].Color = c.venc[g.V[i].Color]
	}
	for i := range g.E {
		g.E[i].Color = c.eenc[g.E[i].Color]
	}
}

func (c *Coder) EncodeAll(graphs []*Graph) {
	for _, g := range graphs {
		c.Encode(g)
	}
}

func (c *Coder) VertexColor(raw int) (int, bool) {
	r, has := c.venc[raw]
	return r, has
}

func (c *Coder) EdgeColor(raw int) (int, bool) {
	r, has := c.eenc[raw]
	return r, has
}

func (c *Coder) RawVertexColor(rank int) int {
	if rank < 0 || rank >= len(c.vdec) {
		return -1
	}
	return c.vdec[rank]
}

func (c *Coder) RawEdgeColor(rank int) int {
	if rank < 0 || rank >= len(c.edec) {
		return -1
	}
	return c.edec[rank]
}
