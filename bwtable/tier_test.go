// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwtable

import (
	"math"
	"testing"
)

func TestTierOf(t *testing.T) {
	for _, test := range []struct {
		size int64
		want string
	}{
		{-1, "L1"},
		{512, "L1"},
		{32768, "L1"},
		{32769, "L2"},
		{1048576, "L2"},
		{1048577, "L3"},
		{28835840, "L3"},
		{28835841, "DRAM"},
		{math.MaxInt64, "DRAM"},
	} {
		if got := Tiers[TierOf(test.size)].Name; got != test.want {
			t.Errorf("TierOf(%d) = %s, want %s", test.size, got, test.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	d := &Derived{Rows: []Bandwidth{
		{1024, 200, 100},
		{32768, 100, 50},
		{2 << 20, 40, 20},
		{64 << 20, math.Inf(1), 10},
		{128 << 20, 20, math.NaN()},
	}}
	sum := Summarize(d)

	var names []string
	for _, s := range sum {
		names = append(names, s.Tier.Name)
	}
	if len(sum) != 3 || names[0] != "L1" || names[1] != "L3" || names[2] != "DRAM" {
		t.Fatalf("got tiers %v, want [L1 L3 DRAM]", names)
	}

	l1 := sum[0]
	if l1.Rows != 2 || l1.Read.N != 2 || l1.Read.Mean != 150 || l1.Read.Peak != 200 {
		t.Errorf("L1 read: got %+v (rows %d)", l1.Read, l1.Rows)
	}
	if l1.Write.Mean != 75 || l1.Write.Peak != 100 {
		t.Errorf("L1 write: got %+v", l1.Write)
	}

	dram := sum[2]
	if dram.Rows != 2 {
		t.Errorf("DRAM: got %d rows, want 2", dram.Rows)
	}
	if dram.Read.N != 1 || dram.Read.Dropped != 1 || dram.Read.Mean != 20 {
		t.Errorf("DRAM read: got %+v", dram.Read)
	}
	if dram.Write.N != 1 || dram.Write.Dropped != 1 || dram.Write.Peak != 10 {
		t.Errorf("DRAM write: got %+v", dram.Write)
	}
}

func TestSummarizeAllDropped(t *testing.T) {
	sum := Summarize(&Derived{Rows: []Bandwidth{{512, math.Inf(1), math.Inf(1)}}})
	if len(sum) != 1 {
		t.Fatalf("got %d tiers, want 1", len(sum))
	}
	if s := sum[0].Read; s.N != 0 || s.Dropped != 1 || !math.IsNaN(s.Mean) || !math.IsNaN(s.Peak) {
		t.Errorf("got %+v, want no finite values", s)
	}
}
