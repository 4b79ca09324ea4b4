package graph

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Input yields a reader for the raw graph data plus a closer, letting the
// loaders re-read the stream when they need a second pass.
type Input func() (reader io.Reader, closer func())

// A Database is the prepared collection of host graphs a mining run works
// on: the graphs, their shared label dictionary, the frequency rank coder,
// and the per-graph search indices.
type Database struct {
	Graphs  []*Graph
	Labels  *Labels
	Coder   *Coder
	Indices []*Indices
}

type ErrorList []error

func (el ErrorList) Error() string {
	var s []string
	for _, err := range el {
		s = append(s, err.Error())
	}
	return "Errors [" + strings.Join(s, ", ") + "]"
}

// Prepare rank-encodes every graph, marks rings between ringMin and ringMax
// vertices (skipped when ringMax <= 0), and builds the search indices.
func (db *Database) Prepare(ringMin, ringMax int) {
	db.Coder = NewCoder(db.Graphs)
	db.Coder.EncodeAll(db.Graphs)
	db.Indices = make([]*Indices, len(db.Graphs))
	for i, g := range db.Graphs {
		if ringMax > 0 {
			g.MarkRings(ringMin, ringMax)
		}
		db.Indices[i] = g.Prepare()
	}
}

// MaskTypes applies m to every graph. Call before Prepare.
func (db *Database) MaskTypes(m Masks) {
	for _, g := range db.Graphs {
		g.MaskTypes(m)
	}
}

// Decode restores every graph's raw type codes.
func (db *Database) Decode() {
	for _, g := range db.Graphs {
		g.Decode()
	}
}

// VertexName resolves a rank encoded vertex color back to its label
// string.
func (db *Database) VertexName(color int) string {
	if db.Coder != nil {
		color = db.Coder.RawVertexColor(color)
	}
	return db.Labels.Label(color)
}

// EdgeName resolves a rank encoded edge color back to its label string.
func (db *Database) EdgeName(color int) string {
	if db.Coder != nil {
		color = db.Coder.RawEdgeColor(color)
	}
	return db.Labels.Label(color)
}

// LoadVeg reads the tab separated veg format: each line is a type tag
// (graph, vertex, edge) and a json record. A graph line starts a new host
// graph; vertex and edge lines attach to the current one. Graphs that fail
// the miner's preconditions are dropped with a warning.
func LoadVeg(input Input, labels *Labels) (*Database, error) {
	if labels == nil {
		labels = NewLabels()
	}
	db := &Database{Labels: labels}
	var errs ErrorList
	var cur *Graph
	var vids map[int64]int
	flush := func() {
		if cur == nil {
			return
		}
		if err := cur.Check(); err != nil {
			errors.Logf("WARNING", "dropping graph: %v", err)
			return
		}
		cur.Id = len(db.Graphs)
		db.Graphs = append(db.Graphs, cur)
	}
	in, closer := input()
	defer closer()
	err := processLines(in, func(line []byte) {
		if len(line) == 0 || !bytes.Contains(line, []byte("\t")) {
			return
		}
		lineType, data := parseLine(line)
		switch lineType {
		case "graph":
			flush()
			cur = NewGraph(10, 10)
			vids = make(map[int64]int)
			if err := loadGraphMeta(cur, data); err != nil {
				errs = append(errs, err)
			}
		case "vertex":
			if cur == nil {
				errs = append(errs, errors.Errorf("vertex line before any graph line"))
				return
			}
			if err := loadVertex(cur, labels, vids, data); err != nil {
				errs = append(errs, err)
			}
		case "edge":
			if cur == nil {
				errs = append(errs, errors.Errorf("edge line before any graph line"))
				return
			}
			if err := loadEdge(cur, labels, vids, data); err != nil {
				errs = append(errs, err)
			}
		default:
			errs = append(errs, errors.Errorf("Unknown line type %v", lineType))
		}
	})
	if err != nil {
		return nil, err
	}
	flush()
	if len(errs) > 0 {
		return nil, errs
	}
	return db, nil
}

func loadGraphMeta(g *Graph, data []byte) error {
	obj, err := parseJson(data)
	if err != nil {
		return err
	}
	if c, has := obj["cls"]; has {
		cls, err := c.(json.Number).Int64()
		if err != nil {
			return err
		}
		g.Cls = int(cls)
	}
	g.Weight = 1.0
	if w, has := obj["weight"]; has {
		weight, err := w.(json.Number).Float64()
		if err != nil {
			return err
		}
		g.Weight = weight
	}
	return nil
}

func loadVertex(g *Graph, labels *Labels, vids map[int64]int, data []byte) error {
	obj, err := parseJson(data)
	if err != nil {
		return err
	}
	id, err := obj["id"].(json.Number).Int64()
	if err != nil {
		return err
	}
	label, ok := obj["label"].(string)
	if !ok {
		return errors.Errorf("vertex %v has no label", id)
	}
	if _, has := vids[id]; has {
		return errors.Errorf("duplicate vertex id %v", id)
	}
	v := g.AddVertex(labels.Color(strings.TrimSpace(label)))
	vids[id] = v.Idx
	return nil
}

func loadEdge(g *Graph, labels *Labels, vids map[int64]int, data []byte) error {
	obj, err := parseJson(data)
	if err != nil {
		return err
	}
	src, err := obj["src"].(json.Number).Int64()
	if err != nil {
		return err
	}
	targ, err := obj["targ"].(json.Number).Int64()
	if err != nil {
		return err
	}
	label, ok := obj["label"].(string)
	if !ok {
		return errors.Errorf("edge %v--%v has no label", src, targ)
	}
	sidx, has := vids[src]
	if !has {
		return errors.Errorf("unknown src id %v", src)
	}
	tidx, has := vids[targ]
	if !has {
		return errors.Errorf("unknown targ id %v", targ)
	}
	g.AddEdge(&g.V[sidx], &g.V[tidx], labels.Color(strings.TrimSpace(label)))
	return nil
}

func processLines(in io.Reader, process func([]byte)) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		unsafe := scanner.Bytes()
		line := make([]byte, len(unsafe))
		copy(line, unsafe)
		process(line)
	}
	return scanner.Err()
}

func parseJson(data []byte) (obj map[string]interface{}, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseLine(line []byte) (lineType string, data []byte) {
	split := bytes.SplitN(line, []byte("\t"), 2)
	return strings.TrimSpace(string(split[0])), bytes.TrimSpace(split[1])
}
