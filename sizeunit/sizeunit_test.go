// Copyright 2024 The DD2356 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizeunit

import "testing"

func TestFormat(t *testing.T) {
	test := func(bytes float64, want string) {
		t.Helper()
		if got := Format(bytes); got != want {
			t.Errorf("Format(%v) = %q, want %q", bytes, got, want)
		}
	}

	test(0, "0 B")
	test(1, "1 B")
	test(512, "512 B")
	test(1023, "1023 B")
	// Unit threshold boundaries.
	test(1024, "1 KiB")
	test(1<<20-1, "1024 KiB")
	test(1<<20, "1 MiB")
	test(1<<30, "1 GiB")
	test(1<<40, "1 TiB")
	// Units exhausted: stay in TiB.
	test(2048*(1<<40), "2048 TiB")
}
