// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Avgbar renders a bar chart of average execution times per process
// count.
//
// Usage:
//
//	avgbar [-labels list] [-o file] avgTime.txt
//
// The input file holds one average per line, in the same order as the
// labels. By default the labels are the process counts used by the
// course assignments, 8 through 256.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/robinho46/DD2356-High-Performance-Computing/chart"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: avgbar [options] avgTime.txt\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagLabels = flag.String("labels", "8,16,32,64,128,256", "comma-separated bar `labels`")
	flagOut    = flag.String("o", "average_times.png", "write the chart to `file`")
)

func main() {
	log.SetPrefix("avgbar: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	values, err := chart.ReadValues(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	labels := strings.Split(*flagLabels, ",")
	if err := chart.Bar(values, labels, "Average execution time per process count", "Average time (seconds)", *flagOut); err != nil {
		log.Fatal(err)
	}
}
