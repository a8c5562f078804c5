// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwtable

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Cache capacities of the machine the benchmark targets, in bytes.
const (
	L1Size int64 = 32 << 10
	L2Size int64 = 1 << 20
	L3Size int64 = 55 << 19 // 27.5 MiB
)

// A Tier is a level of the memory hierarchy. A size belongs to the
// first tier whose Max is at least the size.
type Tier struct {
	Name string
	Max  int64
}

// Tiers lists the memory hierarchy from fastest to slowest.
var Tiers = []Tier{
	{"L1", L1Size},
	{"L2", L2Size},
	{"L3", L3Size},
	{"DRAM", math.MaxInt64},
}

// TierOf returns the index in Tiers of the tier holding size.
func TierOf(size int64) int {
	for i, t := range Tiers {
		if size <= t.Max {
			return i
		}
	}
	return len(Tiers) - 1
}

// A Stat describes the finite bandwidth values of one series within
// a tier.
type Stat struct {
	N       int     // Number of finite values
	Dropped int     // Number of ±Inf or NaN values
	Mean    float64 // Mean of finite values, or NaN if N == 0
	Peak    float64 // Maximum finite value, or NaN if N == 0
}

// A TierSummary describes the rows of a Derived table that fall into
// one tier.
type TierSummary struct {
	Tier  Tier
	Rows  int
	Read  Stat
	Write Stat
}

// Summarize groups the rows of d by tier and describes the read and
// write bandwidth of each. Tiers without rows are omitted.
func Summarize(d *Derived) []TierSummary {
	reads := make([][]float64, len(Tiers))
	writes := make([][]float64, len(Tiers))
	rows := make([]int, len(Tiers))
	for _, r := range d.Rows {
		i := TierOf(r.Size)
		rows[i]++
		reads[i] = append(reads[i], r.Read)
		writes[i] = append(writes[i], r.Write)
	}

	var out []TierSummary
	for i, t := range Tiers {
		if rows[i] == 0 {
			continue
		}
		out = append(out, TierSummary{
			Tier:  t,
			Rows:  rows[i],
			Read:  newStat(reads[i]),
			Write: newStat(writes[i]),
		})
	}
	return out
}

func newStat(xs []float64) Stat {
	var s Stat
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			s.Dropped++
			continue
		}
		finite = append(finite, x)
	}
	s.N = len(finite)
	if s.N == 0 {
		s.Mean, s.Peak = math.NaN(), math.NaN()
		return s
	}
	s.Mean = stats.Mean(finite)
	_, s.Peak = stats.Bounds(finite)
	return s
}
