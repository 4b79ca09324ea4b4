package graph

import (
	"io/ioutil"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/dot"
)

// LoadDot reads a dot file. Every top level graph in the file becomes one
// host graph of the database; subgraph blocks are flattened into their
// parent. Edges are treated as undirected.
func LoadDot(input Input, labels *Labels) (*Database, error) {
	if labels == nil {
		labels = NewLabels()
	}
	r, closer := input()
	text, err := ioutil.ReadAll(r)
	closer()
	if err != nil {
		return nil, err
	}
	db := &Database{Labels: labels}
	dp := &dotParse{
		db:     db,
		labels: labels,
	}
	err = dot.StreamParse(text, dp)
	if err != nil {
		return nil, err
	}
	dp.flush()
	return db, nil
}

type dotParse struct {
	db       *Database
	labels   *Labels
	cur      *Graph
	subgraph int
	vids     map[string]int
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "SubGraph" {
		p.subgraph += 1
		return nil
	}
	p.cur = NewGraph(10, 10)
	p.vids = make(map[string]int)
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.cur == nil {
		return errors.Errorf("dot statement outside of a graph")
	}
	switch n.Label {
	case "Node":
		p.loadVertex(n)
	case "Edge":
		p.loadEdge(n)
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
		return nil
	}
	p.flush()
	return nil
}

func (p *dotParse) flush() {
	if p.cur == nil {
		return
	}
	g := p.cur
	p.cur = nil
	p.vids = nil
	if err := g.Check(); err != nil {
		errors.Logf("WARNING", "dropping graph: %v", err)
		return
	}
	g.Id = len(p.db.Graphs)
	p.db.Graphs = append(p.db.Graphs, g)
}

func (p *dotParse) loadVertex(n *combos.Node) {
	sid := n.Get(0).Value.(string)
	label := sid
	for _, attr := range n.Get(1).Children {
		if attr.Get(0).Value.(string) == "label" {
			label = attr.Get(1).Value.(string)
			break
		}
	}
	v := p.cur.AddVertex(p.labels.Color(label))
	p.vids[sid] = v.Idx
}

func (p *dotParse) loadEdge(n *combos.Node) {
	getId := func(sid string) int {
		if _, has := p.vids[sid]; !has {
			p.loadVertex(combos.NewNode("Node").
				AddKid(combos.NewValueNode("ID", sid)).
				AddKid(combos.NewNode("Attrs")))
		}
		return p.vids[sid]
	}
	sidx := getId(n.Get(0).Value.(string))
	tidx := getId(n.Get(1).Value.(string))
	label := ""
	for _, attr := range n.Get(2).Children {
		if attr.Get(0).Value.(string) == "label" {
			label = attr.Get(1).Value.(string)
			break
		}
	}
	p.cur.AddEdge(&p.cur.V[sidx], &p.cur.V[tidx], p.labels.Color(label))
}
