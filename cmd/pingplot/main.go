// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pingplot renders log-log charts of ping-pong benchmark results.
//
// Usage:
//
//	pingplot [-o dir] mode=file.txt ...
//
// Each input file holds whitespace-delimited "size time" records. The
// chart for a mode is written to <mode>_communication.png, e.g.
// intra_node_communication.png. Unlike pingfit, no model is fitted;
// the measurements are drawn as-is.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/robinho46/DD2356-High-Performance-Computing/chart"
	"github.com/robinho46/DD2356-High-Performance-Computing/pingpong"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: pingplot [options] mode=file.txt ...\n")
	fmt.Fprintf(os.Stderr, "modes: intra-node, inter-node\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var flagOut = flag.String("o", ".", "write charts to `dir`")

var modeNames = map[string]pingpong.Mode{
	"intra-node": pingpong.IntraNode,
	"inter-node": pingpong.InterNode,
}

func main() {
	log.SetPrefix("pingplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	for _, arg := range flag.Args() {
		i := strings.Index(arg, "=")
		if i < 0 {
			log.Fatalf("argument %q is not of the form mode=file", arg)
		}
		mode, ok := modeNames[arg[:i]]
		if !ok {
			log.Fatalf("unknown mode %q", arg[:i])
		}

		pairs, err := pingpong.ReadPairs(arg[i+1:])
		if err != nil {
			log.Fatal(err)
		}
		path := filepath.Join(*flagOut, pingpong.LinePlotName(mode))
		if err := chart.Line(pairs, mode, path); err != nil {
			log.Fatal(err)
		}
	}
}
