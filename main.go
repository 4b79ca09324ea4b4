package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/TrustAGI-Lab/fragmine/cmd"
	"github.com/TrustAGI-Lab/fragmine/config"
)

func init() {
	cmd.UsageMessage = "fragmine --help"
	cmd.ExtendedMessage = `
fragmine - mine frequent subgraph fragments from a graph database

$ fragmine -o <path> --support=<int> [Global Options] \
    <format> [Format Options] <input-path> \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then <format> [Format Options] then
      <input-path>. Changes in ordering are not supported.

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the documentation for Reporters for details.


Global Options
    -h, --help                view this message
    --formats                 show the available input formats
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<int>           minimum number of host graphs a fragment must
                              embed into (required)
    --min-vertices=<int>      minimum size of a reported fragment (default 1)
    --max-vertices=<int>      stop growing fragments at this many vertices
                              (default unlimited)
    --rings                   mine ring aware: ring bonds are distinguished
                              from chain bonds and fragments with unfinished
                              rings are never reported
    --ring-min=<int>          smallest ring size to mark (default 3)
    --ring-max=<int>          largest ring size to mark (default 8)
    --top-k=<int>             default k for the top reporter
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Formats
    veg                       tab separated veg lines (graph, vertex, edge)
    dot                       graphviz dot files, edges treated as undirected

    veg Example
        $ fragmine -o /tmp/fragmine --support=6 \
            veg --chemical ./data/molecules.veg.gz

    Format Options
        -h, help              view this message
        --chemical            mask vertex types to the element number and edge
                              types to the bond order, the chemical encoding

    veg File Format
        The veg file format is a line delimited format with graph, vertex,
        and edge lines. For example:

        graph	{"cls":1}
        vertex	{"id":136,"label":"C"}
        edge	{"src":136,"targ":137,"label":"1"}

        Note: the spaces between the line type and {...} are tabs

    veg Grammar
        line -> graph "\n"
              | vertex "\n"
              | edge "\n"

        graph -> "graph" "\t" graph_json

        vertex -> "vertex" "\t" vertex_json

        edge -> "edge" "\t" edge_json

        graph_json -> {"cls": int, "weight": float, ...}
        // all items are optional

        vertex_json -> {"id": int, "label": string, ...}
        // other items are optional

        edge_json -> {"src": int, "targ": int, "label": string, ...}
        // other items are optional


Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the fragments
    file                      write the fragments to the output dir
    unique                    takes an "inner reporter" but only passes the
                              unique fragments to it
    skip                      pass every n-th fragment to the inner reporter
    top                       collect every fragment, then pass only the k
                              highest scoring ones to the inner reporter on
                              close

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -e, embeddings=<name> the prefix of the name of the file in the output
                              directory to write the embeddings
        -p, patterns=<name>   the prefix of the name of the file in the output
                              directory to write the patterns

    skip Options
        -s, skip=<int>        pass every n-th fragment (default 2)

    top Options
        -k, top=<int>         how many fragments to keep (default --top-k)

    Examples

        $ fragmine -o <path> --support=5 \
            veg ./molecules.veg.gz \
            chain log file

        $ fragmine -o <path> --support=5 --min-vertices=3 --rings \
            veg --chemical ./molecules.veg.gz \
            top -k 100 file
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"formats", "reporters",
			"support=",
			"min-vertices=",
			"max-vertices=",
			"rings",
			"ring-min=",
			"ring-max=",
			"top-k=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a format?) try:")
		fmt.Fprintf(os.Stderr, "$ %v veg %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	support := 0
	minVertices := 1
	maxVertices := 0
	rings := false
	ringMin := 3
	ringMax := 8
	topK := 10
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			support = cmd.ParseInt(oa.Arg())
		case "--min-vertices":
			minVertices = cmd.ParseInt(oa.Arg())
		case "--max-vertices":
			maxVertices = cmd.ParseInt(oa.Arg())
		case "--rings":
			rings = true
		case "--ring-min":
			ringMin = cmd.ParseInt(oa.Arg())
		case "--ring-max":
			ringMax = cmd.ParseInt(oa.Arg())
		case "--top-k":
			topK = cmd.ParseInt(oa.Arg())
		case "--formats":
			fmt.Fprintln(os.Stderr, "Formats:")
			for k := range cmd.Types {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 {
		fmt.Fprintf(os.Stderr, "Support <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:       cache,
		Output:      output,
		Support:     support,
		MinVertices: minVertices,
		MaxVertices: maxVertices,
		RingAware:   rings,
		RingMin:     ringMin,
		RingMax:     ringMax,
		TopK:        topK,
	}
	return cmd.Main(args, conf)
}
