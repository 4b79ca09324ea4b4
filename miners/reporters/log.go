package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/TrustAGI-Lab/fragmine/lattice"
	"github.com/TrustAGI-Lab/fragmine/types/graph"
)

type Log struct {
	db     *graph.Database
	level  string
	prefix string
	count  int
}

func NewLog(db *graph.Database, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{db: db, level: level, prefix: prefix}
}

func (lr *Log) Report(f *lattice.Fragment) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v sup=%d %v", lr.prefix, lr.count, f.Support(), f.Pat.Pretty(lr.db))
	} else {
		errors.Logf(lr.level, "%v sup=%d %v", lr.count, f.Support(), f.Pat.Pretty(lr.db))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
