// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwunit

import (
	"math"
	"testing"
)

func TestBytes(t *testing.T) {
	test := func(v float64, want string) {
		t.Helper()
		if got := Bytes(v); got != want {
			t.Errorf("Bytes(%v) = %s, want %s", v, got, want)
		}
	}

	test(0, "0B")
	test(512, "512B")
	test(1023, "1023B")
	test(1024, "1KiB")
	test(3000, "2.93KiB")
	test(32768, "32KiB")
	test(1048575, "1024KiB")
	test(1048576, "1MiB")
	test(28835840, "27.5MiB")
	test(1<<30, "1GiB")
	test(1<<42, "4TiB")
	test(-2048, "-2KiB")
	test(math.Inf(1), "+InfB")
}

func TestBandwidth(t *testing.T) {
	test := func(v float64, want string) {
		t.Helper()
		if got := Bandwidth(v); got != want {
			t.Errorf("Bandwidth(%v) = %s, want %s", v, got, want)
		}
	}

	test(0, "0")
	test(1234.4, "1234")
	test(999.95, "1000")
	test(204.8, "204.8")
	test(99.995, "100.0")
	test(51.2, "51.20")
	test(4.4033, "4.403")
	test(0.5, "0.5000")
	test(-12.8, "-12.80")
	test(math.Inf(1), "+Inf")
	test(math.Inf(-1), "-Inf")
	test(math.NaN(), "NaN")
}
