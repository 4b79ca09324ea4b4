package config

import (
	"math/rand"
	"path/filepath"
	"sync"
)

import (
	"github.com/TrustAGI-Lab/fragmine/stores/bytes_int"
)

// Config carries the knobs shared by every stage of a mining run.
type Config struct {
	Cache       string
	Output      string
	Support     int
	MinVertices int
	MaxVertices int
	RingAware   bool
	RingMin     int
	RingMax     int
	TopK        int
	Unique      bool
	AsyncTasks  sync.WaitGroup
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:       c.Cache,
		Output:      c.Output,
		Support:     c.Support,
		MinVertices: c.MinVertices,
		MaxVertices: c.MaxVertices,
		RingAware:   c.RingAware,
		RingMin:     c.RingMin,
		RingMax:     c.RingMax,
		TopK:        c.TopK,
		Unique:      c.Unique,
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) BytesIntMultiMap(name string) (bytes_int.MultiMap, error) {
	if c.Cache == "" {
		return bytes_int.AnonBpTree()
	} else {
		return bytes_int.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
