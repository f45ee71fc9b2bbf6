// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pingfit fits a latency-bandwidth model to ping-pong benchmark
// results.
//
// Usage:
//
//	pingfit [-o dir] [-db dsn] [-driver name] mode=file.txt ...
//
// Each input file holds whitespace-delimited "size time" records, one
// per line, and is labeled with its communication mode, e.g.
//
//	pingfit intra-node=results/intra.txt inter-node=results/inter.txt
//
// For each input, pingfit fits time = size/bandwidth + latency over
// the measurements with size >= 512 bytes, prints the derived
// bandwidth and latency, and writes a log-log plot of the fit to
// <mode>_bestfit.png. A fit that cannot be computed is reported and
// the remaining inputs are still processed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/robinho46/DD2356-High-Performance-Computing/pingpong"
	"github.com/robinho46/DD2356-High-Performance-Computing/resultdb"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: pingfit [options] mode=file.txt ...\n")
	fmt.Fprintf(os.Stderr, "modes: intra-node, inter-node\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagOut    = flag.String("o", ".", "write plots to `dir`")
	flagDB     = flag.String("db", "", "also record results to the database at `dsn`")
	flagDriver = flag.String("driver", "sqlite3", "database `driver`: sqlite3 or mysql")
)

var modeNames = map[string]pingpong.Mode{
	"intra-node": pingpong.IntraNode,
	"inter-node": pingpong.InterNode,
}

func main() {
	log.SetPrefix("pingfit: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	var db *resultdb.DB
	if *flagDB != "" {
		var err error
		db, err = resultdb.OpenSQL(*flagDriver, *flagDB)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
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
		path := arg[i+1:]

		pairs, err := pingpong.ReadPairs(path)
		if err != nil {
			log.Fatal(err)
		}

		res, err := pingpong.Fit(pairs, mode)
		var ferr *pingpong.FitError
		if errors.As(err, &ferr) {
			// Degrade to a null result and keep going with the
			// remaining inputs.
			fmt.Printf("error fitting %s: %v\n", path, err)
			fmt.Printf("Bandwidth (bytes/s) for %s communication: n/a\n", mode)
			fmt.Printf("Latency (s) for %s communication: n/a\n", mode)
			continue
		}
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Bandwidth (bytes/s) for %s communication: %g\n", mode, res.Bandwidth)
		fmt.Printf("Latency (s) for %s communication: %g\n", mode, res.Latency)

		if err := pingpong.SavePlot(pairs, res, mode, *flagOut); err != nil {
			log.Fatal(err)
		}
		if db != nil {
			if err := db.RecordFit(context.Background(), mode, res); err != nil {
				log.Fatal(err)
			}
		}
	}
}
