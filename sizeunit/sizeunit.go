// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizeunit renders byte counts with binary (IEC) unit
// suffixes for axis labels and reports.
package sizeunit

import "fmt"

// units in increasing order of magnitude. ISO/IEC 80000 defines
// larger prefixes, but benchmark message sizes never exceed TiB.
var units = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// Format renders a byte count using the largest unit that keeps the
// scaled value at or above one, e.g. Format(1024) == "1 KiB" and
// Format(1023) == "1023 B". Values beyond the largest unit stay in
// TiB.
func Format(bytes float64) string {
	size := bytes
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.0f %s", size, units[i])
}
