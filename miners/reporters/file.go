package reporters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

import (
	"github.com/TrustAGI-Lab/fragmine/config"
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/types/graph"
)

// File writes discovered fragments in veg form, patterns to one file and
// their embeddings to another. The two files cross reference through the
// pattern id.
type File struct {
	config     *config.Config
	db         *graph.Database
	patterns   io.WriteCloser
	embeddings io.WriteCloser
	count      int
}

func NewFile(c *config.Config, db *graph.Database, patternsFilename, embeddingsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + ".veg"))
	if err != nil {
		return nil, err
	}
	embeddings, err := os.Create(c.OutputFile(embeddingsFilename + ".json"))
	if err != nil {
		patterns.Close()
		return nil, err
	}
	r := &File{
		config:     c,
		db:         db,
		patterns:   patterns,
		embeddings: embeddings,
	}
	return r, nil
}

func (r *File) Report(f *lattice.Fragment) error {
	pid := r.count
	r.count++
	err := r.formatPattern(pid, f)
	if err != nil {
		return err
	}
	return r.formatEmbeddings(pid, f)
}

func (r *File) formatPattern(pid int, f *lattice.Fragment) error {
	meta, err := json.Marshal(map[string]interface{}{
		"id":         pid,
		"support":    f.Support(),
		"embeddings": f.EmbeddingCount(),
		"level":      f.Level(),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.patterns, "graph\t%s\n", meta)
	if err != nil {
		return err
	}
	for i := range f.Pat.V {
		obj, err := json.Marshal(map[string]interface{}{
			"id":    f.Pat.V[i].Idx,
			"label": r.db.VertexName(f.Pat.V[i].Color),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.patterns, "vertex\t%s\n", obj)
		if err != nil {
			return err
		}
	}
	for i := range f.Pat.E {
		e := &f.Pat.E[i]
		obj, err := json.Marshal(map[string]interface{}{
			"src":   e.Src,
			"targ":  e.Targ,
			"label": r.db.EdgeName(e.Color),
			"ring":  e.Ring,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.patterns, "edge\t%s\n", obj)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *File) formatEmbeddings(pid int, f *lattice.Fragment) error {
	for _, head := range f.Embs {
		for emb := head; emb != nil; emb = emb.Next {
			obj, err := json.Marshal(map[string]interface{}{
				"pattern": pid,
				"graph":   emb.Gidx,
				"ids":     emb.Ids,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(r.embeddings, "%s\n", obj)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *File) Close() error {
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	return r.embeddings.Close()
}
