// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Logstats aggregates computation times from benchmark log files.
//
// Usage:
//
//	logstats [-trim] [-db dsn] [-driver name] [label=]file.txt ...
//
// Each input file holds the log output of repeated runs at one thread
// count; lines such as
//
//	DFTW computation in 0.859346 seconds
//
// carry the measurements, everything else is ignored. Labeling an
// argument as in "64=results/64.txt" names the run by its thread
// count. For each file, logstats prints the mean and the population
// standard deviation of the measured times.
//
// The -trim option discards outliers using the interquartile range
// rule before aggregating. With -db, results are also recorded in the
// given database for later comparison.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/robinho46/DD2356-High-Performance-Computing/benchlog"
	"github.com/robinho46/DD2356-High-Performance-Computing/resultdb"
	"github.com/robinho46/DD2356-High-Performance-Computing/timestat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: logstats [options] [label=]file.txt ...\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagTrim   = flag.Bool("trim", false, "discard outliers before aggregating")
	flagDB     = flag.String("db", "", "also record results to the database at `dsn`")
	flagDriver = flag.String("driver", "sqlite3", "database `driver`: sqlite3 or mysql")
)

func main() {
	log.SetPrefix("logstats: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	series, err := benchlog.ReadSeries(flag.Args(), benchlog.DFTW)
	if err != nil {
		log.Fatal(err)
	}

	summarize := timestat.Summarize
	if *flagTrim {
		summarize = timestat.Trimmed
	}

	var rows []timestat.Row
	for _, s := range series {
		sum, err := summarize(s.Times)
		if err != nil {
			log.Fatalf("%s: %v", s.Label, err)
		}
		rows = append(rows, timestat.Row{Label: s.Label, Summary: sum})
	}
	timestat.FormatText(os.Stdout, rows)

	if *flagDB != "" {
		db, err := resultdb.OpenSQL(*flagDriver, *flagDB)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		ctx := context.Background()
		for _, r := range rows {
			if err := db.RecordSummary(ctx, r.Label, r.Summary); err != nil {
				log.Fatal(err)
			}
		}
	}
}
