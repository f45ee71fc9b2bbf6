// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timestat

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// A Row pairs a Summary with the label of the run it summarizes.
type Row struct {
	Label   string
	Summary Summary
}

// FormatText writes rows as an aligned text table.
func FormatText(w io.Writer, rows []Row) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "threads\tn\tmean (s)\tstddev (s)\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\n", r.Label, r.Summary.N, r.Summary.Mean, r.Summary.StdDev)
	}
	tw.Flush()
}
